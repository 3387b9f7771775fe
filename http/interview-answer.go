package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/sortify-ai/backend/httpjson"
	"github.com/sortify-ai/backend/logger"
)

// submitAnswer evaluates the candidate's answer and streams the next
// question as server-sent events: one {"text": token} event per token,
// a {"done_text": full} event with the assembled question, then
// "[DONE]". Non-streaming modes send the whole question in one event.
func (httpserver *HttpServer) submitAnswer(w http.ResponseWriter, r *http.Request) {
	_, userUuid, ok := httpserver.requireAuth(w, r)
	if !ok {
		return
	}
	intervUuid, ok := httpserver.interviewUuidParam(w, r)
	if !ok {
		return
	}

	ctx := logger.WithInterviewUuid(r.Context(), intervUuid.String())
	log := logger.FromContext(ctx)

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported!", http.StatusInternalServerError)
		return
	}

	var writeMutex sync.Mutex
	streaming := false
	writeEvent := func(payload any) {
		writeMutex.Lock()
		defer writeMutex.Unlock()
		if !streaming {
			w.Header().Set("Content-Type", "text/event-stream")
			w.Header().Set("Cache-Control", "no-cache")
			w.Header().Set("Connection", "keep-alive")
			streaming = true
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
	}

	res, err := httpserver.intervSrvc.SubmitAnswer(ctx, intervUuid, userUuid, req.Message,
		func(token string) {
			writeEvent(map[string]string{"text": token})
		})
	if err != nil {
		// Precondition failures happen before any token is written, so
		// a plain JSON error is still possible.
		if !streaming {
			httpjson.HandleError(log, w, err)
			return
		}
		log.Warn("answer stream aborted", "error", err)
		writeEvent(map[string]string{"error": err.Error()})
		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
		return
	}

	if res.Streamed {
		writeEvent(map[string]string{"done_text": res.NextQuestion})
	} else {
		writeEvent(struct {
			Text     string `json:"text"`
			DoneText string `json:"done_text"`
		}{res.NextQuestion, res.NextQuestion})
	}
	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}
