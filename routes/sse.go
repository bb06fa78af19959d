package routes

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Nishan123/yumm-ai/jobs"
	"github.com/Nishan123/yumm-ai/logger"
	"github.com/Nishan123/yumm-ai/middleware"
	"github.com/Nishan123/yumm-ai/services"

	"go.uber.org/zap"
)

// sseSessionKey mirrors the generation endpoints: the authenticated user id,
// or the client-provided session header for guests.
func sseSessionKey(r *http.Request) string {
	if uid := middleware.UserID(r); uid != "" {
		return uid
	}
	if key := r.Header.Get("X-Session-Key"); key != "" {
		return key
	}
	return "guest"
}

// GenerationSSE streams generation status transitions to the client so it
// can render the loading stages while a recipe is being produced. Each
// client only receives its own session's updates.
func GenerationSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	sessionKey := sseSessionKey(r)

	updateCh := make(chan services.GenerationSession, 10)
	broker := jobs.GetBroker()
	broker.Subscribe(sessionKey, updateCh)

	logger.Info("SSE client connected", zap.String("session", sessionKey))

	fmt.Fprintf(w, "event: connected\ndata: {\"status\": \"connected\"}\n\n")
	flusher.Flush()

	ctx := r.Context()

	for {
		select {
		case <-ctx.Done():
			logger.Info("SSE client disconnected")
			broker.Unsubscribe(updateCh)
			return
		case update := <-updateCh:
			data, err := json.Marshal(update)
			if err != nil {
				logger.Error("failed to marshal generation update", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "event: generation_update\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
