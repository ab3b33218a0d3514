package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"pupper-backend/application/services"
	"pupper-backend/infrastructure/config"
	"pupper-backend/interfaces/http/rest/handlers"
	"pupper-backend/interfaces/http/rest/middleware"
	"pupper-backend/pkg/errors"
)

// Router creates and configures the HTTP router
type Router struct {
	config   *config.Config
	dogs     *services.DogService
	images   *services.ImageService
	shelters *services.ShelterService
	users    *services.UserService
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	dogs *services.DogService,
	images *services.ImageService,
	shelters *services.ShelterService,
	users *services.UserService,
	logger *zap.Logger,
) *Router {
	return &Router{
		config:   cfg,
		dogs:     dogs,
		images:   images,
		shelters: shelters,
		users:    users,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	errHandler := errors.NewHandler(rt.logger)

	// Dog endpoints
	router.Route("/dogs", func(r chi.Router) {
		dogHandler := handlers.NewDogHandler(rt.dogs, errHandler, rt.logger)
		r.Get("/", dogHandler.List)
		r.Post("/", dogHandler.Create)
		r.Get("/{dogID}", dogHandler.Get)
		r.Put("/{dogID}", dogHandler.Update)
		r.Delete("/{dogID}", dogHandler.Delete)
		r.Post("/{dogID}/vote", dogHandler.Vote)
	})

	// Image endpoints
	router.Route("/images", func(r chi.Router) {
		imageHandler := handlers.NewImageHandler(rt.images, errHandler, rt.logger)
		r.Post("/", imageHandler.Upload)
		r.Get("/{imageID}", imageHandler.Get)
	})

	// Shelter endpoints
	router.Route("/shelters", func(r chi.Router) {
		shelterHandler := handlers.NewShelterHandler(rt.shelters, errHandler, rt.logger)
		r.Post("/", shelterHandler.Create)
		r.Get("/", shelterHandler.List)
		r.Get("/{shelterID}", shelterHandler.Get)
	})

	// User endpoints
	router.Route("/users", func(r chi.Router) {
		userHandler := handlers.NewUserHandler(rt.users, errHandler, rt.logger)
		r.Post("/", userHandler.Create)
		r.Get("/{userID}", userHandler.Get)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
