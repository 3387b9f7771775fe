package intervsrvc

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const selectCols = `uuid, user_uuid, template_uuid, role, mode,
	conversation_history, final_report, final_score, duration_min,
	completed, suspended, suspend_reason, created_at, updated_at`

func scanInterview(scan func(dest ...any) error) (*Interview, error) {
	var interv Interview
	var uuidStr, userStr string
	var tmplStr sql.NullString
	var finalScore sql.NullFloat64
	var durationMin sql.NullInt64
	err := scan(
		&uuidStr,
		&userStr,
		&tmplStr,
		&interv.Role,
		&interv.Mode,
		&interv.Transcript,
		&interv.FinalReport,
		&finalScore,
		&durationMin,
		&interv.Completed,
		&interv.Suspended,
		&interv.SuspendReason,
		&interv.CreatedAt,
		&interv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if interv.UUID, err = uuid.Parse(uuidStr); err != nil {
		return nil, err
	}
	if interv.UserUuid, err = uuid.Parse(userStr); err != nil {
		return nil, err
	}
	if tmplStr.Valid {
		tmplUuid, err := uuid.Parse(tmplStr.String)
		if err != nil {
			return nil, err
		}
		interv.TemplateUuid = &tmplUuid
	}
	if finalScore.Valid {
		score := finalScore.Float64
		interv.FinalScore = &score
	}
	if durationMin.Valid {
		mins := int(durationMin.Int64)
		interv.DurationMin = &mins
	}
	return &interv, nil
}

func (s *IntervSrvc) insertInterview(ctx context.Context, interv *Interview) error {
	var tmplStr *string
	if interv.TemplateUuid != nil {
		str := interv.TemplateUuid.String()
		tmplStr = &str
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interviews (uuid, user_uuid, template_uuid, role, mode,
			conversation_history, final_report, completed, suspended,
			suspend_reason, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		interv.UUID.String(), interv.UserUuid.String(), tmplStr,
		interv.Role, string(interv.Mode), interv.Transcript,
		interv.FinalReport, interv.Completed, interv.Suspended,
		interv.SuspendReason, interv.CreatedAt, interv.UpdatedAt)
	return err
}

func (s *IntervSrvc) updateInterview(ctx context.Context, interv *Interview) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE interviews SET conversation_history = ?, final_report = ?,
			final_score = ?, duration_min = ?, completed = ?, suspended = ?,
			suspend_reason = ?, updated_at = ?
		WHERE uuid = ?
	`,
		interv.Transcript, interv.FinalReport,
		nullableFloat(interv.FinalScore), nullableInt(interv.DurationMin),
		interv.Completed, interv.Suspended, interv.SuspendReason,
		interv.UpdatedAt, interv.UUID.String())
	return err
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func (s *IntervSrvc) getInterview(ctx context.Context, intervUuid uuid.UUID) (*Interview, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectCols+` FROM interviews WHERE uuid = ?`,
		intervUuid.String())
	interv, err := scanInterview(row.Scan)
	if err == sql.ErrNoRows {
		return nil, newErrInterviewNotFound()
	}
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return interv, nil
}

func (s *IntervSrvc) listWhere(ctx context.Context, where string, args ...any) ([]Interview, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectCols+` FROM interviews `+where+` ORDER BY created_at DESC`,
		args...)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	defer rows.Close()

	var intervs []Interview
	for rows.Next() {
		interv, err := scanInterview(rows.Scan)
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		intervs = append(intervs, *interv)
	}
	if err := rows.Err(); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return intervs, nil
}
