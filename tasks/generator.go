package tasks

import (
	"context"
	"errors"
	"log/slog"

	"blog-writer/store"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const generationErrorPrefix = "Error generating content: "

// Writer produces the body of a post for a topic.
type Writer interface {
	WriteBlog(ctx context.Context, topic string) (string, error)
}

// BlogResult is the outcome of one topic. Content is always set: on a
// generation failure it holds the "Error generating content: ..." text that
// was stored in place of a post.
type BlogResult struct {
	Topic         string
	Content       string
	GenerationErr error
	SaveErr       error
}

func (r BlogResult) Saved() bool {
	return r.SaveErr == nil
}

type Generator struct {
	writer  Writer
	store   store.Store
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewGenerator wires a writer to a store. rpm > 0 paces completion calls to
// that many per minute.
func NewGenerator(writer Writer, st store.Store, rpm int, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Generator{writer: writer, store: st, logger: logger}
	if rpm > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1)
	}
	return g
}

func (g *Generator) Store() store.Store {
	return g.store
}

// GenerateBlog writes one post and tries to store it. A failed generation
// still stores the error text, like a post would be.
func (g *Generator) GenerateBlog(ctx context.Context, topic string) BlogResult {
	result := BlogResult{Topic: topic}

	content, err := g.write(ctx, topic)
	if err != nil {
		result.GenerationErr = err
		content = generationErrorPrefix + err.Error()
	}
	result.Content = content

	result.SaveErr = g.store.Insert(ctx, store.Record{Title: topic, Content: content})
	if result.SaveErr != nil {
		FailedBlog(g.logger, topic, result.SaveErr)
	} else {
		SavedBlog(g.logger, topic)
	}
	return result
}

func (g *Generator) write(ctx context.Context, topic string) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	return g.writer.WriteBlog(ctx, topic)
}

// GenerateBlogs handles topics one after another and returns, in order, the
// ones that were stored. A failing topic does not stop the run; a cancelled
// context does.
func (g *Generator) GenerateBlogs(ctx context.Context, topics []string) []string {
	runID := uuid.NewString()
	g.logger.Info("Generating blogs", "run", runID, "topics", len(topics))

	generated := make([]string, 0, len(topics))
	for _, topic := range topics {
		if err := ctx.Err(); err != nil {
			g.logger.Warn("Blog generation interrupted", "run", runID, "topic", topic, "error", err)
			break
		}

		result := g.GenerateBlog(ctx, topic)
		if result.Saved() {
			generated = append(generated, topic)
		}
	}

	g.logger.Info("Finished generating blogs", "run", runID, "saved", len(generated), "failed", len(topics)-len(generated))
	return generated
}

func FailedBlog(logger *slog.Logger, topic string, err error) {
	var statusErr *store.StatusError
	if errors.As(err, &statusErr) {
		logger.Error("Failed to save blog", "topic", topic, "status", statusErr.StatusCode, "body", statusErr.Body)
		return
	}
	logger.Error("Failed to save blog", "topic", topic, "error", err.Error())
}

func SavedBlog(logger *slog.Logger, topic string) {
	logger.Info("Successfully saved blog", "topic", topic)
}
