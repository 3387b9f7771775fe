package proctorsrvc

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/wailsapp/mimetype"
)

const thumbnailMaxWidth = 320

type UploadSnapshotParams struct {
	InterviewUuid uuid.UUID
	// ImageDataUrl is the webcam frame as a browser data URL
	// ("data:image/png;base64,....").
	ImageDataUrl string
	Reason       string
	Kind         string
}

// UploadSnapshot stores one webcam frame captured by the proctoring
// frontend. The full frame goes to S3 keyed by category; a small JPEG
// thumbnail is kept in the database for the recruiter list view.
func (s *ProctorSrvc) UploadSnapshot(ctx context.Context, p UploadSnapshotParams) (*Snapshot, error) {
	imgContent, err := decodeDataUrl(p.ImageDataUrl)
	if err != nil {
		return nil, newErrInvalidImage().SetDebug(err)
	}

	mType := mimetype.Detect(imgContent)
	if mType == nil || !strings.HasPrefix(mType.String(), "image/") {
		return nil, newErrInvalidImage()
	}

	reason := p.Reason
	if reason == "" {
		reason = "snapshot"
	}
	kind := p.Kind
	if kind == "" {
		kind = "general"
	}

	now := time.Now()
	key := snapshotKey(reason, mType.Extension(), now)

	objectUrl := ""
	if s.bucket != nil {
		objectUrl, err = s.bucket.Upload(ctx, imgContent, key, mType.String())
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
	}

	thumbnail, err := makeThumbnail(imgContent, mType.String())
	if err != nil {
		// An undecodable but sniffed image still gets archived; only
		// the preview is lost.
		s.logger.Warn("thumbnail generation failed", "error", err)
		thumbnail = nil
	}

	snap := &Snapshot{
		InterviewUuid: p.InterviewUuid,
		ObjectUrl:     objectUrl,
		Kind:          kind,
		Reason:        reason,
		CreatedAt:     now,
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO proctor_snapshots (interview_uuid, object_url, kind, reason, thumbnail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snap.InterviewUuid.String(), snap.ObjectUrl, snap.Kind, snap.Reason, thumbnail, snap.CreatedAt)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	snap.ID, _ = res.LastInsertId()

	s.logger.Info("snapshot stored",
		"interview_uuid", p.InterviewUuid,
		"key", key,
		"reason", reason)
	return snap, nil
}

func decodeDataUrl(dataUrl string) ([]byte, error) {
	_, b64, found := strings.Cut(dataUrl, ",")
	if !found {
		return nil, fmt.Errorf("not a data url")
	}
	return base64.StdEncoding.DecodeString(b64)
}

// snapshotKey categorizes frames by what triggered them so review
// tooling can list device detections and suspensions separately.
func snapshotKey(reason string, ext string, at time.Time) string {
	ts := evidenceTimestamp(at)
	lower := strings.ToLower(reason)
	switch {
	case strings.Contains(lower, "device") || strings.Contains(lower, "phone") || strings.Contains(lower, "laptop"):
		return fmt.Sprintf("evidence/devices/device_detection_%s_%s%s", sanitizeReason(reason), ts, ext)
	case strings.Contains(lower, "suspend"):
		return fmt.Sprintf("evidence/snapshots/suspensions/suspend_%s%s", ts, ext)
	case strings.Contains(lower, "warning"):
		return fmt.Sprintf("evidence/snapshots/warnings/warning_%s%s", ts, ext)
	default:
		return fmt.Sprintf("evidence/snapshots/%s_%s%s", sanitizeReason(reason), ts, ext)
	}
}

func sanitizeReason(reason string) string {
	var b strings.Builder
	for _, c := range reason {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == ' ', c == '-', c == '_':
			b.WriteRune('_')
		}
	}
	return strings.TrimRight(b.String(), "_")
}

func makeThumbnail(imgContent []byte, mType string) ([]byte, error) {
	var img image.Image
	var err error
	switch mType {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(imgContent))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(imgContent))
	default:
		return nil, fmt.Errorf("unsupported image format: %s", mType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	width := uint(img.Bounds().Dx())
	if width > thumbnailMaxWidth {
		width = thumbnailMaxWidth
	}
	resized := resize.Resize(width, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
