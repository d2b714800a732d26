package http

import (
	"github.com/DevSolex/todo-app/internal/config"
	"github.com/DevSolex/todo-app/internal/http/handlers"
	"github.com/DevSolex/todo-app/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db)

	// Probes are never rate limited.
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	rl := middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow)

	r.GET("/", h.Index)

	r.POST("/users", rl, h.Register)
	r.GET("/users", rl, h.ListUsers)

	r.POST("/tasks", rl, h.CreateTask)
	r.GET("/tasks", rl, h.ListUserTasks)
	r.PUT("/tasks", rl, h.UpdateTask)
}
