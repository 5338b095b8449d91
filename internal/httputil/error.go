package httputil

import (
	"log/slog"
	"net/http"
)

const (
	StatusSuccess = "sucesso"
	StatusError   = "erro"
)

// Success answers 200 with status "sucesso". Extra keys are merged in.
func Success(w http.ResponseWriter, msg string, extra map[string]any) {
	body := map[string]any{"status": StatusSuccess, "mensagem": msg}
	for k, v := range extra {
		body[k] = v
	}
	WriteJSON(w, http.StatusOK, body)
}

// Failure reports a handled domain error. Still 200, callers read the status field.
func Failure(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("request failed", "message", msg, "error", err)
	} else {
		slog.Warn("request failed", "message", msg)
	}
	WriteJSON(w, http.StatusOK, map[string]any{"status": StatusError, "mensagem": msg})
}

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
