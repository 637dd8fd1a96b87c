package models

// Synopsis formats accepted by GET /zoro/info/:animeId.
const (
	SynopsisHTML     = "html"
	SynopsisMarkdown = "markdown"
	SynopsisText     = "text"
)

// SearchRequest binds the path of GET /zoro/:name.
type SearchRequest struct {
	// Name is the title keyword as typed by the client. It is query-escaped
	// before being placed into the site's search URL.
	Name string `uri:"name" binding:"required"`
}

// InfoRequest binds the path and query of GET /zoro/info/:animeId.
type InfoRequest struct {
	// AnimeID is the site slug returned by a search, e.g. "jujutsu-kaisen-tv-534".
	AnimeID string `uri:"animeId" binding:"required"`

	// SynopsisFormat controls how the synopsis markup is rendered.
	// Allowed: "html" (default, inner markup as found), "markdown", "text".
	SynopsisFormat string `form:"synopsis_format" binding:"omitempty,oneof=html markdown text"`
}

// Defaults applies default values to unset fields.
func (r *InfoRequest) Defaults() {
	if r.SynopsisFormat == "" {
		r.SynopsisFormat = SynopsisHTML
	}
}
