package http

import (
	"net/http"

	"github.com/sortify-ai/backend/httpjson"
)

func (httpserver *HttpServer) healthz(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteSuccessJson(w, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}
