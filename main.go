package main

import (
	"blog-writer/ai"
	"blog-writer/config"
	"blog-writer/controllers"
	"blog-writer/helpers"
	"blog-writer/models"
	"blog-writer/store"
	"blog-writer/tasks"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"
)

var app *pocketbase.PocketBase

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app = helpers.CreateApp()

	var blogs *controllers.Blogs

	app.OnBootstrap().BindFunc(func(e *core.BootstrapEvent) error {
		if err := e.Next(); err != nil {
			return err
		}
		helpers.SetLogger(e.App.Logger())

		b, err := newBlogs(e.App, cfg)
		if err != nil {
			return err
		}
		blogs = b
		return nil
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		controllers.SetupRoutes(se, blogs)

		if cfg.GenerateCron != "" {
			app.Cron().MustAdd("Generate Blogs", cfg.GenerateCron, func() {
				ctx := context.Background()
				topics, err := blogs.Topics.Topics(ctx)
				if err != nil {
					app.Logger().Error("Failed to load topics for scheduled run", "error", err)
					return
				}
				blogs.Generator.GenerateBlogs(ctx, topics)
			})
		}
		return se.Next()
	})

	app.RootCmd.AddCommand(&cobra.Command{
		Use:   "generate [topic...]",
		Short: "Generate and store blog posts once, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			topics := args
			if len(topics) == 0 {
				var err error
				if topics, err = blogs.Topics.Topics(ctx); err != nil {
					return err
				}
			}
			saved := blogs.Generator.GenerateBlogs(ctx, topics)
			fmt.Fprintf(cmd.OutOrStdout(), "saved %d/%d: %s\n", len(saved), len(topics), strings.Join(saved, ", "))
			return nil
		},
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func newBlogs(app core.App, cfg *config.Config) (*controllers.Blogs, error) {
	logger := app.Logger()
	httpClient := helpers.NewHTTPClient(cfg.HTTPTimeout)

	writer, err := ai.NewClient(ai.Options{
		APIKey:     cfg.GroqAPIKey,
		Model:      cfg.GroqModel,
		Endpoint:   cfg.GroqURL,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	var st store.Store
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := models.ConnectDatabase(cfg.DatabaseURL, cfg.Env, cfg.DBMigrate)
		if err != nil {
			return nil, err
		}
		st = store.NewPostgres(db, cfg.DatabaseURL, logger)
	case config.StoreLocal:
		st = store.NewLocal(app, logger)
	default:
		st, err = store.NewSupabase(store.SupabaseOptions{
			BaseURL:    cfg.SupabaseURL,
			Key:        cfg.SupabaseKey,
			Table:      cfg.SupabaseTable,
			HTTPClient: httpClient,
			Logger:     logger,
		})
		if err != nil {
			return nil, err
		}
	}

	var topics tasks.TopicSource = tasks.StaticTopics(cfg.Topics)
	if cfg.RedisURL != "" {
		rdb, err := models.ConnectRedis(context.Background(), cfg.RedisURL, cfg.Env)
		if err != nil {
			return nil, err
		}
		topics = &tasks.RedisTopics{Client: rdb, Key: cfg.RedisTopicKey, Fallback: topics, Logger: logger}
	}

	logger.Info("Blog API configured", "store", cfg.StoreDriver, "location", st.Location(), "model", cfg.GroqModel)

	return &controllers.Blogs{
		Generator: tasks.NewGenerator(writer, st, cfg.GroqRPM, logger),
		Topics:    topics,
		Config:    cfg,
	}, nil
}
