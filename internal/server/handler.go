package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type handlers struct {
	db           Database
	updateForcer UpdateForcer
	displayer    Displayer
	logger       Logger
}

func newHandler(rootURL string, db Database, updateForcer UpdateForcer,
	displayer Displayer, logger Logger) http.Handler {
	handlers := &handlers{
		db:           db,
		updateForcer: updateForcer,
		displayer:    displayer,
		logger:       logger,
	}

	rootURL = strings.TrimSuffix(rootURL, "/")

	router := chi.NewRouter()
	router.Use(middleware.CleanPath, newLogMiddleware(logger))

	router.Route(rootURL+"/api/v1", func(r chi.Router) {
		r.Get("/display", handlers.getDisplay)
		r.Get("/entries", handlers.listEntries)
		r.Route("/entries/{index}", func(r chi.Router) {
			r.Patch("/", handlers.setField)
			r.Post("/automatic/toggle", handlers.toggleAutomatic)
			r.Post("/active/toggle", handlers.toggleActive)
			r.Get("/display", handlers.getEntryDisplay)
			r.Post("/update", handlers.forceUpdate)
		})
	})

	return router
}
