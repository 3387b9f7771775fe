package http_test

import (
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortify-ai/backend/user"
)

// Path params must not leak into metric labels: one series per route
// pattern, not one per interview uuid.
func TestMetricsUseRoutePattern(t *testing.T) {
	ts := setupServer(t)
	candidateToken := registerAndLogin(t, ts, "cand", user.RoleCandidate)
	intervUuid := startInterview(t, ts, candidateToken, map[string]any{
		"role": "Go Developer",
	})

	w := ts.do(t, nethttp.MethodGet, "/interviews/"+intervUuid+"/time", candidateToken, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)

	w = ts.do(t, nethttp.MethodGet, "/metrics", "", nil)
	require.Equal(t, nethttp.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `path="/interviews/{interviewUuid}/time"`)
	assert.NotContains(t, body, intervUuid)
}
