package controllers

import (
	"blog-writer/helpers"

	"github.com/pocketbase/pocketbase/core"
)

func SetupHealthRoutes(se *core.ServeEvent) {
	se.Router.GET("/{$}", Ping)
}

// @Summary Health Check Endpoint
// @Description Fixed payload; touches no downstream service
// @Tags health
// @Produce json
// @Success 200 {object} helpers.HealthResponse
// @Router / [get]
func Ping(e *core.RequestEvent) error {
	return helpers.Success(e, helpers.HealthResponse{
		Status:  "healthy",
		Message: "Blog API is running",
	})
}
