package routes

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Nishan123/yumm-ai/config"
	"github.com/Nishan123/yumm-ai/controllers"
	"github.com/Nishan123/yumm-ai/middleware"
	"github.com/Nishan123/yumm-ai/services"
)

// SetupRouter wires every HTTP endpoint onto a chi mux.
func SetupRouter(
	cfg *config.Config,
	authController *controllers.AuthController,
	recipeController *controllers.RecipeController,
	cookbookController *controllers.CookbookController,
) *chi.Mux {
	secret := []byte(cfg.JWTSecretKey)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// CORS Configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{config.GetEnv("CORS_ORIGIN", "http://localhost:3000")},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Auth
	r.Post("/auth/register", authController.Register)
	r.Post("/auth/login", authController.Login)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(secret))
		r.Get("/auth/me", authController.Me)
	})

	// Generation and resolution. Generation works for anonymous sessions
	// too, so auth is optional here.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(secret))
		r.Post("/recipes/generate/pantry", recipeController.Generate(services.ModePantry))
		r.Post("/recipes/generate/master", recipeController.Generate(services.ModeMaster))
		r.Post("/recipes/generate/macro", recipeController.Generate(services.ModeMacro))

		r.Get("/recipes/public", recipeController.ListPublic)
		r.Get("/recipes/{recipeId}", recipeController.Get)
		r.Patch("/recipes/{recipeId}/progress", recipeController.Progress)

		// Server-Sent Events for generation progress updates, scoped to
		// the caller's session.
		r.Get("/sse/generation", GenerationSSE)
	})

	// Owner and cookbook routes require a signed-in user.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(secret))
		r.Put("/recipes/{recipeId}", recipeController.Update)
		r.Delete("/recipes/{recipeId}", recipeController.Delete)
		r.Post("/recipes/{recipeId}/toggle-save", recipeController.ToggleSave)

		r.Get("/cookbook", cookbookController.List)
		r.Post("/cookbook", cookbookController.Add)
		r.Get("/cookbook/check/{recipeId}", cookbookController.Check)
		r.Patch("/cookbook/{copyId}", cookbookController.UpdateCopy)
		r.Delete("/cookbook/{copyId}", cookbookController.Remove)
	})

	return r
}
