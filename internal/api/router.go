package api

import (
	"net/http"

	"github.com/dom/battle-service/internal/api/handlers"
	"github.com/dom/battle-service/internal/api/middleware"
	"github.com/dom/battle-service/internal/config"
	"github.com/dom/battle-service/internal/service"
	"github.com/dom/battle-service/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *websocket.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	battleHandler := handlers.NewBattleHandler(services.Battle)
	eventsHandler := handlers.NewEventsHandler(hub)

	r.Route("/battle", func(r chi.Router) {
		r.Get("/", battleHandler.Info)
		r.Post("/start", battleHandler.Start)
		r.Get("/ws", eventsHandler.Handle)
		r.Get("/{battleID}", battleHandler.Get)
	})

	return r
}
