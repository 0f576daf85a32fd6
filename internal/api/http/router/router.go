package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/astroline/astroline-server/internal/api/http/handler"
	"github.com/astroline/astroline-server/internal/api/http/middleware"
	"github.com/astroline/astroline-server/internal/logger"
	"github.com/astroline/astroline-server/internal/model"
	"github.com/astroline/astroline-server/internal/service"
)

// Router assembles the HTTP API from handlers and middleware.
type Router struct {
	authService      *service.Auth
	userService      *service.User
	horoscopeService *service.Horoscope
	deliveryService  *service.Delivery
	contextManager   model.ContextManager
	logger           *logger.Logger
}

func New(
	authService *service.Auth,
	userService *service.User,
	horoscopeService *service.Horoscope,
	deliveryService *service.Delivery,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:      authService,
		userService:      userService,
		horoscopeService: horoscopeService,
		deliveryService:  deliveryService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

// Register builds the route tree.
func (rt *Router) Register() http.Handler {
	authHandler := handler.NewAuth(rt.authService, rt.logger)
	userHandler := handler.NewUser(rt.userService, rt.deliveryService, rt.contextManager, rt.logger)
	horoscopeHandler := handler.NewHoroscope(rt.horoscopeService, rt.logger)

	logging := middleware.NewLogging(rt.logger)
	authenticate := middleware.NewAuthenticate(rt.authService, rt.contextManager, rt.logger)

	r := chi.NewRouter()
	r.Use(logging.Handle)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/login", authHandler.Login)

		r.Get("/horoscopes/today", horoscopeHandler.Today)
		r.Get("/horoscopes/{sign}/{date}", horoscopeHandler.BySignAndDate)

		r.Group(func(r chi.Router) {
			r.Use(authenticate.Handle)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/users/me", userHandler.Me)
			r.Patch("/users/me", userHandler.UpdateMe)
			r.Get("/users/me/deliveries", userHandler.Deliveries)

			r.Post("/admin/horoscopes", horoscopeHandler.Publish)
		})
	})

	return r
}
