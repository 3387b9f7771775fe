package http

import (
	"encoding/json"
	"net/http"

	"github.com/sortify-ai/backend/httpjson"
	"github.com/sortify-ai/backend/proctorsrvc"
	"github.com/sortify-ai/backend/user"
)

func (httpserver *HttpServer) reportViolation(w http.ResponseWriter, r *http.Request) {
	_, _, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	intervUuid, ok := httpserver.interviewUuidParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Type     string         `json:"type"`
		Reason   string         `json:"reason"`
		Evidence map[string]any `json:"evidence"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	violation, err := httpserver.proctorSrvc.RecordViolation(r.Context(), proctorsrvc.RecordViolationParams{
		InterviewUuid: intervUuid,
		Kind:          req.Type,
		Reason:        req.Reason,
		Evidence:      req.Evidence,
	})
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, struct {
		Critical  bool `json:"critical"`
		Suspended bool `json:"suspended"`
	}{
		Critical:  violation.Critical,
		Suspended: violation.Critical,
	})
}

func (httpserver *HttpServer) uploadSnapshot(w http.ResponseWriter, r *http.Request) {
	_, _, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	intervUuid, ok := httpserver.interviewUuidParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Image         string `json:"image"`
		Reason        string `json:"reason"`
		ViolationType string `json:"violation_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	snap, err := httpserver.proctorSrvc.UploadSnapshot(r.Context(), proctorsrvc.UploadSnapshotParams{
		InterviewUuid: intervUuid,
		ImageDataUrl:  req.Image,
		Reason:        req.Reason,
		Kind:          req.ViolationType,
	})
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, struct {
		ObjectUrl string `json:"object_url,omitempty"`
		Kind      string `json:"kind"`
	}{
		ObjectUrl: snap.ObjectUrl,
		Kind:      snap.Kind,
	})
}

func (httpserver *HttpServer) proctorStats(w http.ResponseWriter, r *http.Request) {
	claims, _, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	if claims.Role != user.RoleRecruiter {
		http.Error(w, "only recruiters can view proctoring stats", http.StatusForbidden)
		return
	}
	stats, err := httpserver.proctorSrvc.GetStats(r.Context())
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, struct {
		TotalWarnings   int            `json:"total_warnings"`
		WarningsByType  map[string]int `json:"warnings_by_type"`
		Suspensions     int            `json:"suspensions"`
		DeviceDetection int            `json:"device_detections"`
		Snapshots       int            `json:"snapshots"`
	}{
		TotalWarnings:   stats.TotalWarnings,
		WarningsByType:  stats.WarningsByType,
		Suspensions:     stats.Suspensions,
		DeviceDetection: stats.DeviceDetection,
		Snapshots:       stats.Snapshots,
	})
}
