package http_test

import (
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sortify-ai/backend/tmplsrvc"
	"github.com/sortify-ai/backend/user"
)

func TestCreateTemplateRequiresRecruiter(t *testing.T) {
	ts := setupServer(t)
	candidateToken := registerAndLogin(t, ts, "cand", user.RoleCandidate)

	w := ts.do(t, nethttp.MethodPost, "/templates", candidateToken, map[string]any{
		"title":  "Backend screening",
		"role":   "Backend Developer",
		"topics": []string{"Go"},
	})
	assert.Equal(t, nethttp.StatusForbidden, w.Code)
}

func TestTemplateLifecycle(t *testing.T) {
	ts := setupServer(t)
	recruiterToken := registerAndLogin(t, ts, "rec", user.RoleRecruiter)
	candidateToken := registerAndLogin(t, ts, "cand", user.RoleCandidate)

	tmplUuid := createTemplate(t, ts, recruiterToken, []string{"Go", "SQL"})

	t.Run("Get", func(t *testing.T) {
		w := ts.do(t, nethttp.MethodGet, "/templates/"+tmplUuid, candidateToken, nil)
		assert.Equal(t, nethttp.StatusOK, w.Code)
		var tmpl struct {
			Title      string   `json:"title"`
			Role       string   `json:"role"`
			Difficulty string   `json:"difficulty"`
			Topics     []string `json:"topics"`
			IsActive   bool     `json:"is_active"`
		}
		parseData(t, w, &tmpl)
		assert.Equal(t, "Backend screening", tmpl.Title)
		assert.Equal(t, "Backend Developer", tmpl.Role)
		assert.Equal(t, tmplsrvc.DifficultyIntermediate, tmpl.Difficulty)
		assert.Equal(t, []string{"Go", "SQL"}, tmpl.Topics)
		assert.True(t, tmpl.IsActive)
	})

	t.Run("Available To Candidates", func(t *testing.T) {
		w := ts.do(t, nethttp.MethodGet, "/templates/available", candidateToken, nil)
		assert.Equal(t, nethttp.StatusOK, w.Code)
		var tmpls []struct {
			UUID string `json:"uuid"`
		}
		parseData(t, w, &tmpls)
		assert.Len(t, tmpls, 1)
		assert.Equal(t, tmplUuid, tmpls[0].UUID)
	})

	t.Run("Update By Owner", func(t *testing.T) {
		w := ts.do(t, nethttp.MethodPut, "/templates/"+tmplUuid, recruiterToken, map[string]any{
			"title":     "Backend screening v2",
			"is_active": false,
		})
		assert.Equal(t, nethttp.StatusOK, w.Code)
		var tmpl struct {
			Title    string `json:"title"`
			IsActive bool   `json:"is_active"`
		}
		parseData(t, w, &tmpl)
		assert.Equal(t, "Backend screening v2", tmpl.Title)
		assert.False(t, tmpl.IsActive)
	})

	t.Run("Deactivated Template Hidden", func(t *testing.T) {
		w := ts.do(t, nethttp.MethodGet, "/templates/available", candidateToken, nil)
		assert.Equal(t, nethttp.StatusOK, w.Code)
		var tmpls []struct {
			UUID string `json:"uuid"`
		}
		parseData(t, w, &tmpls)
		assert.Empty(t, tmpls)
	})

	t.Run("Update By Non Owner", func(t *testing.T) {
		otherToken := registerAndLogin(t, ts, "rec2", user.RoleRecruiter)
		w := ts.do(t, nethttp.MethodPut, "/templates/"+tmplUuid, otherToken, map[string]any{
			"title": "hijacked",
		})
		assertErrorCode(t, w, tmplsrvc.ErrCodeNotTemplateOwner)
	})

	t.Run("Delete By Owner", func(t *testing.T) {
		w := ts.do(t, nethttp.MethodDelete, "/templates/"+tmplUuid, recruiterToken, nil)
		assert.Equal(t, nethttp.StatusOK, w.Code)

		w = ts.do(t, nethttp.MethodGet, "/templates/"+tmplUuid, recruiterToken, nil)
		assertErrorCode(t, w, tmplsrvc.ErrCodeTemplateNotFound)
	})
}

func TestListOwnTemplates(t *testing.T) {
	ts := setupServer(t)
	firstToken := registerAndLogin(t, ts, "rec", user.RoleRecruiter)
	secondToken := registerAndLogin(t, ts, "rec2", user.RoleRecruiter)

	createTemplate(t, ts, firstToken, []string{"Go"})
	createTemplate(t, ts, firstToken, []string{"SQL"})

	w := ts.do(t, nethttp.MethodGet, "/templates", firstToken, nil)
	var tmpls []struct {
		UUID string `json:"uuid"`
	}
	parseData(t, w, &tmpls)
	assert.Len(t, tmpls, 2)

	w = ts.do(t, nethttp.MethodGet, "/templates", secondToken, nil)
	parseData(t, w, &tmpls)
	assert.Empty(t, tmpls)
}
