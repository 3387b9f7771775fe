package proctorsrvc

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sortify-ai/backend/s3bucket"
)

// Suspender stops an interview after a critical violation. The
// interview service implements it.
type Suspender interface {
	Suspend(ctx context.Context, intervUuid uuid.UUID, reason string) error
}

// criticalViolations cause immediate suspension of the interview.
var criticalViolations = map[string]bool{
	"multiple_faces": true,
	"no_face":        true,
	"device":         true,
	"tab_absence":    true,
	"copy_attempt":   true,
}

// ProctorSrvc records webcam proctoring events: violations reported by
// the frontend detector and the snapshots captured as evidence.
// Evidence goes to S3 when a bucket is configured; the database always
// keeps the metadata so the recruiter view works without S3.
type ProctorSrvc struct {
	logger    *slog.Logger
	db        *sql.DB
	bucket    *s3bucket.S3Bucket // nil means evidence stays in the database
	suspender Suspender
}

func NewProctorSrvc(db *sql.DB, bucket *s3bucket.S3Bucket, suspender Suspender) *ProctorSrvc {
	return &ProctorSrvc{
		logger:    slog.Default().With("module", "proctor"),
		db:        db,
		bucket:    bucket,
		suspender: suspender,
	}
}

// Violation is one recorded proctoring event.
type Violation struct {
	ID            int64
	InterviewUuid uuid.UUID
	Kind          string
	Description   string
	Critical      bool
	CreatedAt     time.Time
}

// Snapshot is the metadata of one captured webcam frame.
type Snapshot struct {
	ID            int64
	InterviewUuid uuid.UUID
	ObjectUrl     string
	Kind          string
	Reason        string
	CreatedAt     time.Time
}

// Stats aggregates proctoring activity for the recruiter dashboard.
type Stats struct {
	TotalWarnings   int
	WarningsByType  map[string]int
	Suspensions     int
	DeviceDetection int
	Snapshots       int
}

func evidenceTimestamp(t time.Time) string {
	return t.UTC().Format("20060102T150405.000000")
}
