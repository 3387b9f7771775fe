package intervsrvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sortify-ai/backend/evalsrvc"
	"github.com/sortify-ai/backend/user"
)

// interviewDuration resolves the clock of one interview: the owning
// template's duration when it has one, the configured default
// otherwise (also when the template was deleted mid-interview).
func (s *IntervSrvc) interviewDuration(interv *Interview) time.Duration {
	if interv.TemplateUuid != nil {
		tmpl, err := s.tmplSrvc.Get(*interv.TemplateUuid)
		if err == nil && tmpl.DurationMin > 0 {
			return time.Duration(tmpl.DurationMin) * time.Minute
		}
	}
	return s.duration
}

func (s *IntervSrvc) timeRemaining(interv *Interview) time.Duration {
	total := s.interviewDuration(interv)
	elapsed := time.Since(interv.CreatedAt)
	if elapsed >= total {
		return 0
	}
	return total - elapsed
}

// finalize computes the weighted final score, generates the report and
// marks the interview completed. The caller persists the interview.
func (s *IntervSrvc) finalize(ctx context.Context, interv *Interview) {
	interv.Completed = true
	score := evalsrvc.CalculateFinalScore(interv.Transcript)
	interv.FinalScore = &score
	interv.FinalReport = s.evalSrvc.GenerateReport(ctx, interv.Transcript, score)
	mins := int(time.Since(interv.CreatedAt).Minutes())
	interv.DurationMin = &mins
	interv.UpdatedAt = time.Now()

	interviewsCompleted.WithLabelValues(string(interv.Mode)).Inc()
	finalScores.Observe(score)
	s.logger.Info("interview finalized",
		"interview_uuid", interv.UUID,
		"final_score", score,
		"duration_min", mins)
}

// End closes the interview, computes the final score and report and
// returns the updated interview. Ending an already completed interview
// recomputes both, matching a re-submitted end request.
func (s *IntervSrvc) End(ctx context.Context, intervUuid uuid.UUID, byUser uuid.UUID) (*Interview, error) {
	unlock := s.lockInterview(intervUuid)
	defer unlock()

	interv, err := s.getInterview(ctx, intervUuid)
	if err != nil {
		return nil, err
	}
	if interv.UserUuid != byUser {
		return nil, newErrAccessDenied()
	}

	s.finalize(ctx, interv)
	if err := s.updateInterview(ctx, interv); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	s.dropSession(intervUuid)
	return interv, nil
}

// Time reports the session clock for the countdown in the frontend.
func (s *IntervSrvc) Time(ctx context.Context, intervUuid uuid.UUID, byUser uuid.UUID) (*TimeStatus, error) {
	interv, err := s.getInterview(ctx, intervUuid)
	if err != nil {
		return nil, err
	}
	if interv.UserUuid != byUser {
		return nil, newErrAccessDenied()
	}
	return &TimeStatus{
		TimeRemaining: s.timeRemaining(interv).Seconds(),
		TotalTime:     s.interviewDuration(interv).Seconds(),
		Suspended:     interv.Suspended,
		Completed:     interv.Completed,
	}, nil
}

// Suspend stops the interview after a critical proctoring violation.
// Further answers are rejected until a recruiter reviews the case.
func (s *IntervSrvc) Suspend(ctx context.Context, intervUuid uuid.UUID, reason string) error {
	unlock := s.lockInterview(intervUuid)
	defer unlock()

	interv, err := s.getInterview(ctx, intervUuid)
	if err != nil {
		return err
	}
	if interv.Completed {
		return nil
	}
	interv.Suspended = true
	interv.SuspendReason = reason
	interv.UpdatedAt = time.Now()
	if err := s.updateInterview(ctx, interv); err != nil {
		return newErrInternalSE().SetDebug(err)
	}

	interviewsSuspended.Inc()
	s.logger.Warn("interview suspended",
		"interview_uuid", intervUuid,
		"reason", reason)
	return nil
}

// Get returns one interview. Candidates see their own; recruiters also
// see interviews run against templates they authored.
func (s *IntervSrvc) Get(ctx context.Context, intervUuid uuid.UUID, byUser uuid.UUID, role string) (*Interview, error) {
	interv, err := s.getInterview(ctx, intervUuid)
	if err != nil {
		return nil, err
	}
	if interv.UserUuid == byUser {
		return interv, nil
	}
	if role == user.RoleRecruiter && interv.TemplateUuid != nil {
		tmpl, err := s.tmplSrvc.Get(*interv.TemplateUuid)
		if err == nil && tmpl.CreatedBy == byUser {
			return interv, nil
		}
	}
	return nil, newErrAccessDenied()
}

// List returns the interviews visible to the user, newest first.
func (s *IntervSrvc) List(ctx context.Context, byUser uuid.UUID, role string) ([]Interview, error) {
	if role == user.RoleRecruiter {
		return s.listWhere(ctx, `
			WHERE user_uuid = ?
			   OR template_uuid IN (SELECT uuid FROM templates WHERE created_by = ?)`,
			byUser.String(), byUser.String())
	}
	return s.listWhere(ctx, `WHERE user_uuid = ?`, byUser.String())
}

// Analytics aggregates completed interviews of one template for its
// owner.
func (s *IntervSrvc) Analytics(ctx context.Context, tmplUuid uuid.UUID, byUser uuid.UUID) (*TemplateAnalytics, error) {
	tmpl, err := s.tmplSrvc.Get(tmplUuid)
	if err != nil {
		return nil, err
	}
	if tmpl.CreatedBy != byUser {
		return nil, newErrAccessDenied()
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(AVG(final_score), 0),
		       COALESCE(SUM(CASE WHEN suspended THEN 1 ELSE 0 END), 0)
		FROM interviews
		WHERE template_uuid = ? AND completed = 1
	`, tmplUuid.String())

	analytics := TemplateAnalytics{TemplateUuid: tmplUuid}
	if err := row.Scan(&analytics.TotalCandidates, &analytics.AvgScore, &analytics.SuspendedCount); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return &analytics, nil
}
