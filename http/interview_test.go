package http_test

import (
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortify-ai/backend/intervsrvc"
	"github.com/sortify-ai/backend/user"
)

func TestStartTemplateInterviewOverHttp(t *testing.T) {
	ts := setupServer(t)
	recruiterToken := registerAndLogin(t, ts, "rec", user.RoleRecruiter)
	candidateToken := registerAndLogin(t, ts, "cand", user.RoleCandidate)
	tmplUuid := createTemplate(t, ts, recruiterToken, []string{"Go", "SQL"})

	w := ts.do(t, nethttp.MethodPost, "/interviews", candidateToken, map[string]any{
		"template_uuid": tmplUuid,
	})
	require.Equal(t, nethttp.StatusOK, w.Code)

	var res struct {
		UUID  string `json:"uuid"`
		Mode  string `json:"mode"`
		Reply string `json:"reply"`
	}
	parseData(t, w, &res)
	assert.Equal(t, string(intervsrvc.ModeTemplate), res.Mode)
	assert.Contains(t, res.Reply, "strengths")
}

func TestSubmitAnswerStreamsServerSentEvents(t *testing.T) {
	ts := setupServer(t)
	candidateToken := registerAndLogin(t, ts, "cand", user.RoleCandidate)
	intervUuid := startInterview(t, ts, candidateToken, map[string]any{
		"role": "Go Developer",
	})

	w := ts.do(t, nethttp.MethodPost, "/interviews/"+intervUuid+"/answers", candidateToken, map[string]any{
		"message": "I am strongest in Go concurrency and database design.",
	})
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, `data: {"text":`)
	assert.Contains(t, body, `"done_text"`)
	assert.True(t, strings.HasSuffix(body, "data: [DONE]\n\n"), "body: %s", body)
}

func TestSubmitAnswerValidationOverHttp(t *testing.T) {
	ts := setupServer(t)
	candidateToken := registerAndLogin(t, ts, "cand", user.RoleCandidate)
	intervUuid := startInterview(t, ts, candidateToken, map[string]any{
		"role": "Go Developer",
	})

	t.Run("Empty Answer", func(t *testing.T) {
		w := ts.do(t, nethttp.MethodPost, "/interviews/"+intervUuid+"/answers", candidateToken, map[string]any{
			"message": "   ",
		})
		assertErrorCode(t, w, intervsrvc.ErrCodeEmptyAnswer)
	})

	t.Run("Foreign Interview", func(t *testing.T) {
		strangerToken := registerAndLogin(t, ts, "stranger", user.RoleCandidate)
		w := ts.do(t, nethttp.MethodPost, "/interviews/"+intervUuid+"/answers", strangerToken, map[string]any{
			"message": "let me in",
		})
		assertErrorCode(t, w, intervsrvc.ErrCodeAccessDenied)
	})
}

func TestSuspendedInterviewRejectsAnswersOverHttp(t *testing.T) {
	ts := setupServer(t)
	candidateToken := registerAndLogin(t, ts, "cand", user.RoleCandidate)
	intervUuid := startInterview(t, ts, candidateToken, map[string]any{
		"role": "Go Developer",
	})

	w := ts.do(t, nethttp.MethodPost, "/interviews/"+intervUuid+"/violations", candidateToken, map[string]any{
		"type":   "tab_absence",
		"reason": "Candidate left the tab",
	})
	require.Equal(t, nethttp.StatusOK, w.Code)
	var violation struct {
		Critical  bool `json:"critical"`
		Suspended bool `json:"suspended"`
	}
	parseData(t, w, &violation)
	assert.True(t, violation.Critical)
	assert.True(t, violation.Suspended)

	w = ts.do(t, nethttp.MethodPost, "/interviews/"+intervUuid+"/answers", candidateToken, map[string]any{
		"message": "still here",
	})
	assertErrorCode(t, w, intervsrvc.ErrCodeInterviewSuspended)
}

func TestInterviewTimeAndEndOverHttp(t *testing.T) {
	ts := setupServer(t)
	candidateToken := registerAndLogin(t, ts, "cand", user.RoleCandidate)
	intervUuid := startInterview(t, ts, candidateToken, map[string]any{
		"role": "Go Developer",
	})

	w := ts.do(t, nethttp.MethodGet, "/interviews/"+intervUuid+"/time", candidateToken, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	var status struct {
		TimeRemaining float64 `json:"time_remaining"`
		TotalTime     float64 `json:"total_time"`
		Completed     bool    `json:"completed"`
	}
	parseData(t, w, &status)
	assert.Equal(t, 60.0, status.TotalTime)
	assert.Greater(t, status.TimeRemaining, 0.0)
	assert.False(t, status.Completed)

	w = ts.do(t, nethttp.MethodPost, "/interviews/"+intervUuid+"/end", candidateToken, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	var ended struct {
		Message     string `json:"message"`
		FinalReport string `json:"final_report"`
	}
	parseData(t, w, &ended)
	assert.Equal(t, "Interview ended successfully", ended.Message)
	assert.NotEmpty(t, ended.FinalReport)

	w = ts.do(t, nethttp.MethodGet, "/interviews/"+intervUuid, candidateToken, nil)
	var interv struct {
		Completed  bool   `json:"completed"`
		Transcript string `json:"transcript"`
	}
	parseData(t, w, &interv)
	assert.True(t, interv.Completed)
	assert.NotEmpty(t, interv.Transcript)
}

func TestListInterviewsOverHttp(t *testing.T) {
	ts := setupServer(t)
	candidateToken := registerAndLogin(t, ts, "cand", user.RoleCandidate)
	startInterview(t, ts, candidateToken, map[string]any{"role": "Go Developer"})
	startInterview(t, ts, candidateToken, map[string]any{"role": "Python Developer"})

	w := ts.do(t, nethttp.MethodGet, "/interviews", candidateToken, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	var intervs []struct {
		UUID string `json:"uuid"`
		Role string `json:"role"`
	}
	parseData(t, w, &intervs)
	assert.Len(t, intervs, 2)

	otherToken := registerAndLogin(t, ts, "other", user.RoleCandidate)
	w = ts.do(t, nethttp.MethodGet, "/interviews", otherToken, nil)
	parseData(t, w, &intervs)
	assert.Empty(t, intervs)
}
