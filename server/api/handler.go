package api

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/adrianliechti/tryon/config"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/", h.handleIndex)

	r.Get("/docs", h.handleDocs)
	r.Get("/openapi.json", h.handleOpenAPI)

	r.With(h.checkRateLimit).Post("/vton/", h.handleTryOn)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJson(w, map[string]string{
		"message": "Virtual Try On is Running ⚡",
	})
}

// checkRateLimit gates /vton/ per client address before any body parsing or
// upstream work happens.
func (h *Handler) checkRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Limiter().Allow(r.Context(), clientAddress(r), time.Now()) {
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. You can only make 2 requests every 5 minutes. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)

	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, detail string) {
	if detail == "" {
		detail = http.StatusText(code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(map[string]string{
		"detail": detail,
	})
}
