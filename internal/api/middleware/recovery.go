package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/blockhive/internal/api/apierr"
	"github.com/mcoot/blockhive/internal/middleware"
)

// Recovery answers a panicking API handler with the standard INTERNAL_ERROR
// body and closes the connection
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger.With(slog.String("component", "api")), apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Connection", "close")
	apierr.WriteError(w, apierr.NewInternalError())
}
