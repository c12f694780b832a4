package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	// All API routes will be under /api
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/signup", apiHandler.SignupHandler)
		r.Post("/login", apiHandler.LoginHandler)
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Guidance routes are public; a valid token only adds persistence
		r.Group(func(r chi.Router) {
			r.Use(apiHandler.OptionalJWTAuth)

			r.Post("/guidance", apiHandler.GenerateGuidanceHandler)
			r.Post("/guidance/openai", apiHandler.GuidanceOpenAIHandler)
			r.Post("/guidance/gemini", apiHandler.GuidanceGeminiHandler)
		})

		// User-authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(apiHandler.JWTAuthMiddleware)

			r.Get("/guidance/latest", apiHandler.LatestGuidanceHandler)

			r.Get("/profile", apiHandler.GetProfileHandler)
			r.Put("/profile", apiHandler.PutProfileHandler)

			r.Post("/feedings", apiHandler.CreateFeedingHandler)
			r.Get("/feedings", apiHandler.ListFeedingsHandler)

			r.Post("/growth", apiHandler.CreateGrowthHandler)
			r.Get("/growth", apiHandler.ListGrowthHandler)

			r.Post("/cycle", apiHandler.CreateCycleEntryHandler)
			r.Get("/cycle", apiHandler.ListCycleEntriesHandler)

			r.Post("/documents", apiHandler.CreateDocumentHandler)
			r.Get("/documents", apiHandler.ListDocumentsHandler)
		})
	})

	return r
}
