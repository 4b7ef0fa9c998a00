// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"yatra/internal/http/handlers"
	"yatra/internal/http/middleware"
	"yatra/internal/infra"
	"yatra/internal/planner"
	"yatra/internal/trip"
)

type RouterDeps struct {
	Planner        *planner.Service
	Trips          *trip.Service
	Verifier       infra.TokenVerifier
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.Verifier))

	plannerHandler := handlers.NewPlannerHandler(deps.Planner)
	api.POST("/itineraries/generate", plannerHandler.Generate)

	tripHandler := handlers.NewTripHandler(deps.Trips)
	api.POST("/trips", tripHandler.Save)
	api.GET("/trips", tripHandler.List)
	api.GET("/trips/:id", tripHandler.Get)
	api.DELETE("/trips/:id", tripHandler.Delete)

	return r
}
