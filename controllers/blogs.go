package controllers

import (
	"errors"
	"strings"

	"blog-writer/helpers"
	"blog-writer/store"

	"github.com/pocketbase/pocketbase/core"
)

type BlogResponse struct {
	Success         bool   `json:"success"`
	Topic           string `json:"topic"`
	Content         string `json:"content"`
	ModelUsed       string `json:"model_used"`
	SavedToDB       bool   `json:"saved_to_db"`
	Error           string `json:"error,omitempty"`
	GenerationError string `json:"generation_error,omitempty"`
}

type BulkResponse struct {
	Success        bool     `json:"success"`
	BlogsGenerated []string `json:"blogs_generated"`
	Error          string   `json:"error,omitempty"`
}

func SetupBlogRoutes(se *core.ServeEvent, b *Blogs) {
	se.Router.GET("/generate-blogs", b.GenerateBlogs)
	se.Router.GET("/generate-blog/{topic}", b.GenerateBlog)
}

// @Summary Generate and store a post for every topic
// @Description Topics come from repeated ?topic= values, else from the configured source.
// @Description Only topics whose insert succeeded are listed.
// @Tags blogs
// @Produce json
// @Param topic query []string false "topics to use instead of the configured ones"
// @Success 200 {object} BulkResponse
// @Router /generate-blogs [get]
func (b *Blogs) GenerateBlogs(e *core.RequestEvent) error {
	ctx := e.Request.Context()

	topics := queryTopics(e.Request.URL.Query()["topic"])
	if len(topics) == 0 {
		var err error
		topics, err = b.Topics.Topics(ctx)
		if err != nil {
			helpers.Logging("error", "Failed to load topics", "error", err.Error())
			return helpers.Success(e, BulkResponse{Success: false, BlogsGenerated: []string{}, Error: err.Error()})
		}
	}

	generated := b.Generator.GenerateBlogs(ctx, topics)
	return helpers.Success(e, BulkResponse{Success: true, BlogsGenerated: generated})
}

// @Summary Generate and store one post
// @Description Content is returned whether or not the insert worked.
// @Tags blogs
// @Produce json
// @Param topic path string true "post topic"
// @Success 200 {object} BlogResponse
// @Router /generate-blog/{topic} [get]
func (b *Blogs) GenerateBlog(e *core.RequestEvent) error {
	topic := e.Request.PathValue("topic")

	result := b.Generator.GenerateBlog(e.Request.Context(), topic)

	resp := BlogResponse{
		Success:   true,
		Topic:     topic,
		Content:   result.Content,
		ModelUsed: b.Config.GroqModel,
		SavedToDB: result.Saved(),
	}
	if result.GenerationErr != nil {
		resp.GenerationError = result.GenerationErr.Error()
	}
	if result.SaveErr != nil {
		resp.Error = saveErrorMessage(result.SaveErr)
	}

	return helpers.Success(e, resp)
}

// saveErrorMessage tells a store that answered badly apart from one that
// could not be reached.
func saveErrorMessage(err error) string {
	var statusErr *store.StatusError
	if errors.As(err, &statusErr) {
		return "Database error: " + statusErr.Error()
	}
	return "Database connection error: " + err.Error()
}

func queryTopics(values []string) []string {
	topics := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			topics = append(topics, v)
		}
	}
	return topics
}
