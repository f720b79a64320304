package controllers

import (
	"net/http"

	"blog-writer/config"
	"blog-writer/tasks"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// Blogs holds what the blog routes need. Everything in it is read-only once
// the server starts.
type Blogs struct {
	Generator *tasks.Generator
	Topics    tasks.TopicSource
	Config    *config.Config
}

func SetupRoutes(se *core.ServeEvent, b *Blogs) {
	// Replaces pocketbase's default CORS handler (same id). An empty
	// AllowHeaders list echoes whatever the preflight asks for.
	se.Router.Bind(apis.CORS(apis.CORSConfig{
		AllowOrigins:     b.Config.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	SetupHealthRoutes(se)
	SetupBlogRoutes(se, b)
	SetupStoreRoutes(se, b)
}
