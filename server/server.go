package server

import (
	"net/http"
	"time"

	"github.com/adrianliechti/tryon/config"
	"github.com/adrianliechti/tryon/pkg/otel"
	"github.com/adrianliechti/tryon/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	h.Attach(r)

	var handler http.Handler = r

	if otel.EnableTelemetry {
		handler = otelhttp.NewHandler(handler, "server")
	}

	return &Server{
		Config: cfg,

		handler: handler,
	}, nil
}

func (s *Server) ListenAndServe() error {
	server := &http.Server{
		Addr: s.Address,

		Handler: s.handler,

		ReadHeaderTimeout: 10 * time.Second,
	}

	return server.ListenAndServe()
}
