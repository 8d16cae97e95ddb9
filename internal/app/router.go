package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	authAPI "lucky_wheel/internal/api/auth"
	segmentsAPI "lucky_wheel/internal/api/segments"
	wheelAPI "lucky_wheel/internal/api/wheel"
	"lucky_wheel/internal/middleware"
)

type RouterDeps struct {
	Wheel     *wheelAPI.Handler
	Segments  *segmentsAPI.Handler
	Auth      *authAPI.Handler
	SecretKey []byte
	Log       *zap.SugaredLogger
}

// NewRouter mounts the public wheel routes and the operator-only segment
// editor.
func NewRouter(d RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(d.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Post("/auth/login", d.Auth.Login)

	r.Route("/wheel", func(rr chi.Router) {
		rr.Get("/", d.Wheel.State)
		rr.Post("/spin", d.Wheel.Spin)
		rr.Get("/image", d.Wheel.Image)
		rr.Get("/layout", d.Wheel.Layout)
		rr.Get("/result/qr", d.Wheel.ResultQR)
		rr.Get("/history", d.Wheel.History)
		rr.Get("/history/{id}", d.Wheel.SpinByID)
		rr.Get("/stats", d.Wheel.Stats)
	})

	r.Route("/segments", func(rr chi.Router) {
		rr.Use(middleware.Auth(d.SecretKey, d.Log))
		rr.Get("/", d.Segments.List)
		rr.Post("/", d.Segments.Add)
		rr.Delete("/", d.Segments.Clear)
		rr.Post("/defaults", d.Segments.Defaults)
		rr.Post("/save", d.Segments.Save)
		rr.Patch("/{index}", d.Segments.Edit)
		rr.Delete("/{index}", d.Segments.Remove)
	})

	return r
}
