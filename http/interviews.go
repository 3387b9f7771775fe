package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sortify-ai/backend/httpjson"
	"github.com/sortify-ai/backend/intervsrvc"
)

type InterviewResponse struct {
	UUID          string   `json:"uuid"`
	UserUuid      string   `json:"user_uuid"`
	TemplateUuid  *string  `json:"template_uuid,omitempty"`
	Role          string   `json:"role"`
	Mode          string   `json:"mode"`
	Transcript    string   `json:"transcript,omitempty"`
	FinalReport   string   `json:"final_report,omitempty"`
	FinalScore    *float64 `json:"final_score,omitempty"`
	DurationMin   *int     `json:"duration_min,omitempty"`
	Completed     bool     `json:"completed"`
	Suspended     bool     `json:"suspended"`
	SuspendReason string   `json:"suspend_reason,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

func mapInterview(interv *intervsrvc.Interview, withTranscript bool) InterviewResponse {
	res := InterviewResponse{
		UUID:          interv.UUID.String(),
		UserUuid:      interv.UserUuid.String(),
		Role:          interv.Role,
		Mode:          string(interv.Mode),
		FinalScore:    interv.FinalScore,
		DurationMin:   interv.DurationMin,
		Completed:     interv.Completed,
		Suspended:     interv.Suspended,
		SuspendReason: interv.SuspendReason,
		CreatedAt:     interv.CreatedAt.Format(time.RFC3339),
	}
	if interv.TemplateUuid != nil {
		s := interv.TemplateUuid.String()
		res.TemplateUuid = &s
	}
	if withTranscript {
		res.Transcript = interv.Transcript
		res.FinalReport = interv.FinalReport
	}
	return res
}

func (httpserver *HttpServer) interviewUuidParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	intervUuid, err := uuid.Parse(chi.URLParam(r, "interviewUuid"))
	if err != nil {
		http.Error(w, "invalid interview uuid", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return intervUuid, true
}

func (httpserver *HttpServer) startInterview(w http.ResponseWriter, r *http.Request) {
	_, userUuid, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}

	var req struct {
		Role         string  `json:"role"`
		TemplateUuid *string `json:"template_uuid"`
		DynamicMode  bool    `json:"dynamic_mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	params := intervsrvc.StartParams{
		UserUuid:    userUuid,
		Role:        req.Role,
		DynamicMode: req.DynamicMode,
	}
	if req.TemplateUuid != nil {
		tmplUuid, err := uuid.Parse(*req.TemplateUuid)
		if err != nil {
			http.Error(w, "invalid template uuid", http.StatusBadRequest)
			return
		}
		params.TemplateUuid = &tmplUuid
	}

	interv, firstQ, err := httpserver.intervSrvc.Start(r.Context(), params)
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, struct {
		UUID  string `json:"uuid"`
		Mode  string `json:"mode"`
		Reply string `json:"reply"`
	}{
		UUID:  interv.UUID.String(),
		Mode:  string(interv.Mode),
		Reply: firstQ,
	})
}

func (httpserver *HttpServer) listInterviews(w http.ResponseWriter, r *http.Request) {
	claims, userUuid, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	intervs, err := httpserver.intervSrvc.List(r.Context(), userUuid, claims.Role)
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	res := make([]InterviewResponse, len(intervs))
	for i := range intervs {
		res[i] = mapInterview(&intervs[i], false)
	}
	httpjson.WriteSuccessJson(w, res)
}

func (httpserver *HttpServer) getInterview(w http.ResponseWriter, r *http.Request) {
	claims, userUuid, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	intervUuid, ok := httpserver.interviewUuidParam(w, r)
	if !ok {
		return
	}
	interv, err := httpserver.intervSrvc.Get(r.Context(), intervUuid, userUuid, claims.Role)
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapInterview(interv, true))
}

func (httpserver *HttpServer) interviewTime(w http.ResponseWriter, r *http.Request) {
	_, userUuid, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	intervUuid, ok := httpserver.interviewUuidParam(w, r)
	if !ok {
		return
	}
	status, err := httpserver.intervSrvc.Time(r.Context(), intervUuid, userUuid)
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, struct {
		TimeRemaining float64 `json:"time_remaining"`
		TotalTime     float64 `json:"total_time"`
		Suspended     bool    `json:"suspended"`
		Completed     bool    `json:"completed"`
	}{
		TimeRemaining: status.TimeRemaining,
		TotalTime:     status.TotalTime,
		Suspended:     status.Suspended,
		Completed:     status.Completed,
	})
}

func (httpserver *HttpServer) endInterview(w http.ResponseWriter, r *http.Request) {
	_, userUuid, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	intervUuid, ok := httpserver.interviewUuidParam(w, r)
	if !ok {
		return
	}
	interv, err := httpserver.intervSrvc.End(r.Context(), intervUuid, userUuid)
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	var finalScore float64
	if interv.FinalScore != nil {
		finalScore = *interv.FinalScore
	}
	httpjson.WriteSuccessJson(w, struct {
		Message     string  `json:"message"`
		FinalScore  float64 `json:"final_score"`
		FinalReport string  `json:"final_report"`
	}{
		Message:     "Interview ended successfully",
		FinalScore:  finalScore,
		FinalReport: interv.FinalReport,
	})
}
