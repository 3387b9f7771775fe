package http_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortify-ai/backend/evalsrvc"
	"github.com/sortify-ai/backend/http"
	"github.com/sortify-ai/backend/intervsrvc"
	"github.com/sortify-ai/backend/proctorsrvc"
	"github.com/sortify-ai/backend/sqlitedb"
	"github.com/sortify-ai/backend/tmplsrvc"
	"github.com/sortify-ai/backend/user"
)

type testServer struct {
	db      *sql.DB
	handler nethttp.Handler
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	db, err := sqlitedb.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userSrvc := user.NewUserSrvc(db)
	tmplSrvc := tmplsrvc.NewTemplateSrvc(db)
	evalSrvc := evalsrvc.NewEvalSrvc(nil)
	intervSrvc := intervsrvc.NewIntervSrvc(db, tmplSrvc, evalSrvc, nil, time.Minute)
	proctorSrvc := proctorsrvc.NewProctorSrvc(db, nil, intervSrvc)

	server := http.NewHttpServer(userSrvc, tmplSrvc, intervSrvc, proctorSrvc,
		[]byte("test"), []string{"http://localhost:3000"})

	return &testServer{db: db, handler: server.Router()}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonBody)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func parseData(t *testing.T, w *httptest.ResponseRecorder, data any) {
	t.Helper()
	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String())
	require.Equal(t, "success", envelope.Status, "body: %s", w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()
	assert.NotEqual(t, nethttp.StatusOK, w.Code, "expected error status code")

	var errorResponse struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errorResponse),
		"failed to unmarshal error response: %s", w.Body.String())
	assert.Equal(t, "error", errorResponse.Status)
	assert.Equal(t, expectedCode, errorResponse.Code)
	assert.NotEmpty(t, errorResponse.Message)
}

func registerUser(t *testing.T, ts *testServer, username, role string) {
	t.Helper()
	body := map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
		"role":     role,
	}
	if role == user.RoleRecruiter {
		body["company"] = "Acme"
	}
	w := ts.do(t, nethttp.MethodPost, "/users", "", body)
	require.Equal(t, nethttp.StatusOK, w.Code, "register failed: %s", w.Body.String())
}

func loginUser(t *testing.T, ts *testServer, username string) string {
	t.Helper()
	w := ts.do(t, nethttp.MethodPost, "/auth/login", "", map[string]any{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, nethttp.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var token string
	parseData(t, w, &token)
	require.NotEmpty(t, token)
	return token
}

func registerAndLogin(t *testing.T, ts *testServer, username, role string) string {
	t.Helper()
	registerUser(t, ts, username, role)
	return loginUser(t, ts, username)
}

func createTemplate(t *testing.T, ts *testServer, token string, topics []string) string {
	t.Helper()
	w := ts.do(t, nethttp.MethodPost, "/templates", token, map[string]any{
		"title":  "Backend screening",
		"role":   "Backend Developer",
		"topics": topics,
	})
	require.Equal(t, nethttp.StatusOK, w.Code, "create template failed: %s", w.Body.String())

	var tmpl struct {
		UUID string `json:"uuid"`
	}
	parseData(t, w, &tmpl)
	return tmpl.UUID
}

func startInterview(t *testing.T, ts *testServer, token string, body map[string]any) string {
	t.Helper()
	w := ts.do(t, nethttp.MethodPost, "/interviews", token, body)
	require.Equal(t, nethttp.StatusOK, w.Code, "start interview failed: %s", w.Body.String())

	var res struct {
		UUID  string `json:"uuid"`
		Reply string `json:"reply"`
	}
	parseData(t, w, &res)
	require.NotEmpty(t, res.UUID)
	require.NotEmpty(t, res.Reply)
	return res.UUID
}
