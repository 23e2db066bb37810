package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/MrJamesThe3rd/khata/internal/http/cashbook"
	"github.com/MrJamesThe3rd/khata/internal/http/document"
	"github.com/MrJamesThe3rd/khata/internal/http/duty"
	"github.com/MrJamesThe3rd/khata/internal/http/stock"
	"github.com/MrJamesThe3rd/khata/internal/http/workspace"
)

type Options struct {
	AllowedOrigins     []string
	RateLimitPerMinute int
}

func New(
	opts Options,
	documentsV1 *document.Handler,
	dutiesV1 *duty.Handler,
	stockV1 *stock.Handler,
	cashbookV1 *cashbook.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if opts.RateLimitPerMinute > 0 {
		router.Use(httprate.Limit(
			opts.RateLimitPerMinute,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
		))
	}

	router.Route("/api/v1/workspaces/{workspaceID}", func(r chi.Router) {
		r.Use(workspace.Resolve)

		r.Route("/documents", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			documentsV1.Routes(r)
		})

		r.Route("/duties", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			dutiesV1.Routes(r)
		})

		r.Route("/stock", stockV1.Routes)
		r.Route("/cashbook", cashbookV1.Routes)
	})

	return router
}
