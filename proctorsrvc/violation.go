package proctorsrvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

type RecordViolationParams struct {
	InterviewUuid uuid.UUID
	Kind          string
	Reason        string
	Evidence      map[string]any
}

// RecordViolation stores a proctoring violation and, for critical
// kinds, suspends the interview. The raw evidence payload is archived
// compressed so detector output can be replayed during review.
func (s *ProctorSrvc) RecordViolation(ctx context.Context, p RecordViolationParams) (*Violation, error) {
	kind := p.Kind
	if kind == "" {
		kind = "unknown"
	}
	reason := p.Reason
	if reason == "" {
		reason = "No reason provided"
	}
	critical := criticalViolations[kind]

	v := &Violation{
		InterviewUuid: p.InterviewUuid,
		Kind:          kind,
		Description:   fmt.Sprintf("%s: %s", kind, reason),
		Critical:      critical,
		CreatedAt:     time.Now(),
	}

	evidenceJson, err := json.Marshal(map[string]any{
		"type":     "warning",
		"kind":     kind,
		"reason":   reason,
		"evidence": p.Evidence,
		"critical": critical,
	})
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO proctor_violations (interview_uuid, kind, description, evidence, critical, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, v.InterviewUuid.String(), v.Kind, v.Description, string(evidenceJson), v.Critical, v.CreatedAt)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	v.ID, _ = res.LastInsertId()

	if err := s.archiveEvidence(ctx, kind, critical, evidenceJson, v.CreatedAt); err != nil {
		// Archive failures must not block the interview flow.
		s.logger.Warn("evidence archive failed", "kind", kind, "error", err)
	}

	if critical {
		suspendReason := fmt.Sprintf("Critical proctoring violation: %s - %s", kind, reason)
		if err := s.suspender.Suspend(ctx, p.InterviewUuid, suspendReason); err != nil {
			return nil, err
		}
	}

	s.logger.Info("violation recorded",
		"interview_uuid", p.InterviewUuid,
		"kind", kind,
		"critical", critical)
	return v, nil
}

// archiveEvidence uploads the zstd-compressed detector payload. Keys
// mirror the review tooling's expectations: device detections get their
// own prefix, critical suspensions another, plain warnings a third.
func (s *ProctorSrvc) archiveEvidence(ctx context.Context, kind string, critical bool, payload []byte, at time.Time) error {
	if s.bucket == nil {
		return nil
	}

	ts := evidenceTimestamp(at)
	var key string
	switch {
	case kind == "device":
		key = fmt.Sprintf("evidence/devices/device_detection_%s.json.zst", ts)
	case critical:
		key = fmt.Sprintf("evidence/logs/suspend_%s.json.zst", ts)
	default:
		key = fmt.Sprintf("evidence/logs/warning_%s_%s.json.zst", kind, ts)
	}

	compressed, err := compressWithZstd(payload)
	if err != nil {
		return err
	}
	_, err = s.bucket.Upload(ctx, compressed, key, "application/zstd")
	return err
}

func compressWithZstd(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, make([]byte, 0, len(data))), nil
}
