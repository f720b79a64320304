package controllers

import (
	"blog-writer/helpers"

	"github.com/pocketbase/pocketbase/core"
)

type ProbeResponse struct {
	Status     int    `json:"status"`
	Response   string `json:"response"`
	URL        string `json:"url"`
	KeyPreview string `json:"key_preview"`
}

func SetupStoreRoutes(se *core.ServeEvent, b *Blogs) {
	se.Router.GET("/test-supabase", b.TestStore)
}

// TestStore reads from the store and echoes what came back. The key is
// never shown past its first 20 characters.
func (b *Blogs) TestStore(e *core.RequestEvent) error {
	st := b.Generator.Store()
	preview := b.Config.KeyPreview()

	res, err := st.Probe(e.Request.Context())
	if err != nil {
		return helpers.Error(e, helpers.ErrorResponse{
			Error:      err.Error(),
			URL:        st.Location(),
			KeyPreview: preview,
		})
	}

	return helpers.Success(e, ProbeResponse{
		Status:     res.Status,
		Response:   res.Body,
		URL:        st.Location(),
		KeyPreview: preview,
	})
}
