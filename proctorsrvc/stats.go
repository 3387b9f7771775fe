package proctorsrvc

import (
	"context"

	"github.com/google/uuid"
)

// GetStats aggregates recorded proctoring activity.
func (s *ProctorSrvc) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{WarningsByType: make(map[string]int)}

	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) FROM proctor_violations GROUP BY kind
	`)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		stats.TotalWarnings += count
		stats.WarningsByType[kind] = count
		if kind == "device" {
			stats.DeviceDetection = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM proctor_violations WHERE critical = 1
	`)
	if err := row.Scan(&stats.Suspensions); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM proctor_snapshots`)
	if err := row.Scan(&stats.Snapshots); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return stats, nil
}

// ListViolations returns the violations of one interview, newest first.
func (s *ProctorSrvc) ListViolations(ctx context.Context, intervUuid uuid.UUID) ([]Violation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, interview_uuid, kind, description, critical, created_at
		FROM proctor_violations
		WHERE interview_uuid = ?
		ORDER BY created_at DESC
	`, intervUuid.String())
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	defer rows.Close()

	var violations []Violation
	for rows.Next() {
		var v Violation
		var uuidStr string
		if err := rows.Scan(&v.ID, &uuidStr, &v.Kind, &v.Description, &v.Critical, &v.CreatedAt); err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		if v.InterviewUuid, err = uuid.Parse(uuidStr); err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		violations = append(violations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return violations, nil
}
