package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Alvarenga144/InventorySuite/internal/http/auth"
	"github.com/Alvarenga144/InventorySuite/internal/http/middleware"
	"github.com/Alvarenga144/InventorySuite/internal/http/product"
	"github.com/Alvarenga144/InventorySuite/internal/http/report"
	"github.com/Alvarenga144/InventorySuite/internal/http/sale"
	"github.com/Alvarenga144/InventorySuite/internal/user"
)

func New(
	tokens *user.TokenManager,
	authV1 *auth.Handler,
	productsV1 *product.Handler,
	salesV1 *sale.Handler,
	reportsV1 *report.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		// Everything below requires a bearer token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))

			r.Route("/productos", func(r chi.Router) {
				productsV1.Routes(r)
			})

			r.Route("/ventas", func(r chi.Router) {
				salesV1.Routes(r)
			})

			r.Route("/reportes", func(r chi.Router) {
				reportsV1.Routes(r)
			})
		})
	})

	return router
}
