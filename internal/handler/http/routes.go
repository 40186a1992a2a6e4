package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/seller/register", h.register)
		r.Post("/api/seller/login", h.login)
	})

	// authenticated routes: one syncdata3/syncdata4 pair per replicated
	// collection, plus the write-through side channels
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		for entity, s := range h.syncers {
			r.Post("/api/"+entity+"/syncdata3", h.syncV3(s))
			r.Post("/api/"+entity+"/syncdata4", h.syncV4(s))
		}

		r.Post("/api/setting/save", h.saveSetting)
		r.Post("/api/report/save", h.saveReport)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
