package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sortify-ai/backend/httpjson"
	"github.com/sortify-ai/backend/tmplsrvc"
	"github.com/sortify-ai/backend/user"
)

type TemplateResponse struct {
	UUID        string   `json:"uuid"`
	CreatedBy   string   `json:"created_by"`
	Title       string   `json:"title"`
	Role        string   `json:"role"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	DurationMin int      `json:"duration_min"`
	Topics      []string `json:"topics"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at"`
}

func mapTemplate(t *tmplsrvc.Template) TemplateResponse {
	return TemplateResponse{
		UUID:        t.UUID.String(),
		CreatedBy:   t.CreatedBy.String(),
		Title:       t.Title,
		Role:        t.Role,
		Description: t.Description,
		Difficulty:  t.Difficulty,
		DurationMin: t.DurationMin,
		Topics:      t.Topics,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func mapTemplates(ts []tmplsrvc.Template) []TemplateResponse {
	res := make([]TemplateResponse, len(ts))
	for i := range ts {
		res[i] = mapTemplate(&ts[i])
	}
	return res
}

func (httpserver *HttpServer) templateUuidParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	tmplUuid, err := uuid.Parse(chi.URLParam(r, "templateUuid"))
	if err != nil {
		http.Error(w, "invalid template uuid", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return tmplUuid, true
}

func (httpserver *HttpServer) createTemplate(w http.ResponseWriter, r *http.Request) {
	claims, userUuid, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	if claims.Role != user.RoleRecruiter {
		http.Error(w, "only recruiters can create templates", http.StatusForbidden)
		return
	}

	var req struct {
		Title       string   `json:"title"`
		Role        string   `json:"role"`
		Description string   `json:"description"`
		Difficulty  string   `json:"difficulty"`
		DurationMin int      `json:"duration_min"`
		Topics      []string `json:"topics"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	tmpl, err := httpserver.tmplSrvc.Create(r.Context(), tmplsrvc.CreateParams{
		CreatedBy:   userUuid,
		Title:       req.Title,
		Role:        req.Role,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		DurationMin: req.DurationMin,
		Topics:      req.Topics,
	})
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTemplate(tmpl))
}

// listTemplates returns the caller's own templates.
func (httpserver *HttpServer) listTemplates(w http.ResponseWriter, r *http.Request) {
	_, userUuid, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	tmpls, err := httpserver.tmplSrvc.ListByOwner(userUuid)
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTemplates(tmpls))
}

// listAvailableTemplates returns active templates candidates can start
// an interview from.
func (httpserver *HttpServer) listAvailableTemplates(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := httpserver.requireAuth(w, r); !ok {
		return
	}
	tmpls, err := httpserver.tmplSrvc.ListActive()
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTemplates(tmpls))
}

func (httpserver *HttpServer) getTemplate(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := httpserver.requireAuth(w, r); !ok {
		return
	}
	tmplUuid, ok := httpserver.templateUuidParam(w, r)
	if !ok {
		return
	}
	tmpl, err := httpserver.tmplSrvc.Get(tmplUuid)
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTemplate(tmpl))
}

func (httpserver *HttpServer) updateTemplate(w http.ResponseWriter, r *http.Request) {
	_, userUuid, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	tmplUuid, ok := httpserver.templateUuidParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Title       *string  `json:"title"`
		Role        *string  `json:"role"`
		Description *string  `json:"description"`
		Difficulty  *string  `json:"difficulty"`
		DurationMin *int     `json:"duration_min"`
		Topics      []string `json:"topics"`
		IsActive    *bool    `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	tmpl, err := httpserver.tmplSrvc.Update(r.Context(), tmplUuid, userUuid, tmplsrvc.UpdateParams{
		Title:       req.Title,
		Role:        req.Role,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		DurationMin: req.DurationMin,
		Topics:      req.Topics,
		IsActive:    req.IsActive,
	})
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTemplate(tmpl))
}

func (httpserver *HttpServer) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	_, userUuid, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	tmplUuid, ok := httpserver.templateUuidParam(w, r)
	if !ok {
		return
	}
	if err := httpserver.tmplSrvc.Delete(r.Context(), tmplUuid, userUuid); err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, nil)
}

func (httpserver *HttpServer) templateAnalytics(w http.ResponseWriter, r *http.Request) {
	_, userUuid, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	tmplUuid, ok := httpserver.templateUuidParam(w, r)
	if !ok {
		return
	}
	analytics, err := httpserver.intervSrvc.Analytics(r.Context(), tmplUuid, userUuid)
	if err != nil {
		httpjson.HandleError(httpserver.logger, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, struct {
		TemplateUuid    string  `json:"template_uuid"`
		TotalCandidates int     `json:"total_candidates"`
		AvgScore        float64 `json:"avg_score"`
		SuspendedCount  int     `json:"suspended_count"`
	}{
		TemplateUuid:    analytics.TemplateUuid.String(),
		TotalCandidates: analytics.TotalCandidates,
		AvgScore:        analytics.AvgScore,
		SuspendedCount:  analytics.SuspendedCount,
	})
}
