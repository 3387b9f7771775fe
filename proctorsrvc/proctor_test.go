package proctorsrvc_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortify-ai/backend/intervsrvc"
	"github.com/sortify-ai/backend/proctorsrvc"
	"github.com/sortify-ai/backend/sqlitedb"
	"github.com/sortify-ai/backend/user"
)

// recordingSuspender captures suspension calls instead of touching an
// interview service.
type recordingSuspender struct {
	intervUuid uuid.UUID
	reason     string
	calls      int
}

func (s *recordingSuspender) Suspend(ctx context.Context, intervUuid uuid.UUID, reason string) error {
	s.intervUuid = intervUuid
	s.reason = reason
	s.calls++
	return nil
}

func setup(t *testing.T) (*sql.DB, *proctorsrvc.ProctorSrvc, *recordingSuspender, uuid.UUID) {
	t.Helper()
	db, err := sqlitedb.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	candidate, err := user.NewUserSrvc(db).CreateUser(context.Background(), user.CreateUserParams{
		Username: "candidate",
		Email:    "candidate@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO interviews (uuid, user_uuid, role, mode, created_at, updated_at)
		VALUES (?, ?, 'Go Developer', 'default', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, "00000000-0000-0000-0000-000000000001", candidate.UUID.String())
	require.NoError(t, err)

	suspender := &recordingSuspender{}
	srvc := proctorsrvc.NewProctorSrvc(db, nil, suspender)
	return db, srvc, suspender, uuid.MustParse("00000000-0000-0000-0000-000000000001")
}

func TestCriticalViolationSuspends(t *testing.T) {
	_, srvc, suspender, intervUuid := setup(t)

	v, err := srvc.RecordViolation(context.Background(), proctorsrvc.RecordViolationParams{
		InterviewUuid: intervUuid,
		Kind:          "device",
		Reason:        "phone detected",
	})
	require.NoError(t, err)

	assert.True(t, v.Critical)
	assert.Equal(t, 1, suspender.calls)
	assert.Equal(t, intervUuid, suspender.intervUuid)
	assert.Equal(t, "Critical proctoring violation: device - phone detected", suspender.reason)
}

func TestNonCriticalViolationDoesNotSuspend(t *testing.T) {
	_, srvc, suspender, intervUuid := setup(t)

	v, err := srvc.RecordViolation(context.Background(), proctorsrvc.RecordViolationParams{
		InterviewUuid: intervUuid,
		Kind:          "gaze_away",
		Reason:        "looked away briefly",
	})
	require.NoError(t, err)

	assert.False(t, v.Critical)
	assert.Equal(t, 0, suspender.calls)
}

func TestViolationDefaults(t *testing.T) {
	_, srvc, _, intervUuid := setup(t)

	v, err := srvc.RecordViolation(context.Background(), proctorsrvc.RecordViolationParams{
		InterviewUuid: intervUuid,
	})
	require.NoError(t, err)
	assert.Equal(t, "unknown", v.Kind)
	assert.Equal(t, "unknown: No reason provided", v.Description)
}

func testPngDataUrl(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestUploadSnapshot(t *testing.T) {
	db, srvc, _, intervUuid := setup(t)

	snap, err := srvc.UploadSnapshot(context.Background(), proctorsrvc.UploadSnapshotParams{
		InterviewUuid: intervUuid,
		ImageDataUrl:  testPngDataUrl(t),
		Reason:        "device detected",
		Kind:          "device",
	})
	require.NoError(t, err)
	assert.Equal(t, "device", snap.Kind)
	// No bucket configured, so there is no object URL.
	assert.Empty(t, snap.ObjectUrl)

	var thumbnail []byte
	err = db.QueryRow(`SELECT thumbnail FROM proctor_snapshots WHERE id = ?`, snap.ID).Scan(&thumbnail)
	require.NoError(t, err)
	assert.NotEmpty(t, thumbnail)
}

func TestUploadSnapshotRejectsGarbage(t *testing.T) {
	_, srvc, _, intervUuid := setup(t)

	_, err := srvc.UploadSnapshot(context.Background(), proctorsrvc.UploadSnapshotParams{
		InterviewUuid: intervUuid,
		ImageDataUrl:  "not a data url",
	})
	assert.Error(t, err)

	_, err = srvc.UploadSnapshot(context.Background(), proctorsrvc.UploadSnapshotParams{
		InterviewUuid: intervUuid,
		ImageDataUrl:  "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hello")),
	})
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	_, srvc, _, intervUuid := setup(t)

	for _, kind := range []string{"device", "tab_absence", "gaze_away", "gaze_away"} {
		_, err := srvc.RecordViolation(context.Background(), proctorsrvc.RecordViolationParams{
			InterviewUuid: intervUuid,
			Kind:          kind,
			Reason:        "test",
		})
		require.NoError(t, err)
	}
	_, err := srvc.UploadSnapshot(context.Background(), proctorsrvc.UploadSnapshotParams{
		InterviewUuid: intervUuid,
		ImageDataUrl:  testPngDataUrl(t),
	})
	require.NoError(t, err)

	stats, err := srvc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalWarnings)
	assert.Equal(t, 2, stats.WarningsByType["gaze_away"])
	assert.Equal(t, 1, stats.DeviceDetection)
	assert.Equal(t, 2, stats.Suspensions) // device and tab_absence are critical
	assert.Equal(t, 1, stats.Snapshots)

	violations, err := srvc.ListViolations(context.Background(), intervUuid)
	require.NoError(t, err)
	assert.Len(t, violations, 4)
}

// Interview service satisfies the Suspender interface.
var _ proctorsrvc.Suspender = (*intervsrvc.IntervSrvc)(nil)
