package scraper

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/zoroscrape/config"
	"github.com/use-agent/zoroscrape/engine"
	"github.com/use-agent/zoroscrape/models"
)

// stubEngine answers every fetch with a canned result and records the URL.
type stubEngine struct {
	result *engine.FetchResult
	err    error
	urls   []string
}

func (e *stubEngine) Name() string { return "stub" }

func (e *stubEngine) Fetch(_ context.Context, req *engine.FetchRequest) (*engine.FetchResult, error) {
	e.urls = append(e.urls, req.URL)
	return e.result, e.err
}

func newTestScraper(eng engine.Engine) *Scraper {
	return NewScraper(eng, config.SiteConfig{BaseURL: "https://zoro.to"})
}

func TestScraper_URLs(t *testing.T) {
	sc := newTestScraper(&stubEngine{})

	assert.Equal(t, "https://zoro.to/search?keyword=Jujutsu-Kaisen", sc.SearchURL("Jujutsu-Kaisen"))
	assert.Equal(t, "https://zoro.to/search?keyword=one+piece%26sort%3Dscore", sc.SearchURL("one piece&sort=score"))
	assert.Equal(t, "https://zoro.to/jujutsu-kaisen-tv-534?ref=search", sc.InfoURL("jujutsu-kaisen-tv-534"))
	assert.Equal(t, "https://zoro.to/a%3Fb?ref=search", sc.InfoURL("a?b"))
}

func TestScraper_Search(t *testing.T) {
	eng := &stubEngine{result: &engine.FetchResult{
		StatusCode: 200,
		Body:       searchPage(card("/jujutsu-kaisen-tv-534?ref=search", "Jujutsu Kaisen")),
	}}
	sc := newTestScraper(eng)

	resp, err := sc.Search(context.Background(), "jujutsu kaisen")
	require.NoError(t, err)
	assert.Equal(t, []models.SearchResultItem{{ID: "jujutsu-kaisen-tv-534"}}, resp.Results)
	assert.Equal(t, []string{"https://zoro.to/search?keyword=jujutsu+kaisen"}, eng.urls)
}

func TestScraper_UpstreamStatus(t *testing.T) {
	eng := &stubEngine{result: &engine.FetchResult{StatusCode: 404, Body: "not found"}}
	sc := newTestScraper(eng)

	_, err := sc.Search(context.Background(), "nothing")
	require.Error(t, err)
	se := models.AsScrapeError(err)
	assert.Equal(t, models.ErrCodeUpstreamStatus, se.Code)
	assert.Equal(t, 404, se.UpstreamStatus)

	_, err = sc.Info(context.Background(), "nothing-1", models.SynopsisHTML)
	assert.True(t, models.IsCode(err, models.ErrCodeUpstreamStatus))
}

func TestScraper_TransportErrorPassesThrough(t *testing.T) {
	fetchErr := models.NewScrapeError(models.ErrCodeTimeout, "upstream timed out", context.DeadlineExceeded)
	sc := newTestScraper(&stubEngine{err: fetchErr})

	_, err := sc.Info(context.Background(), "jujutsu-kaisen-tv-534", models.SynopsisHTML)
	assert.ErrorIs(t, err, fetchErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestScraper_InfoSynopsisFormats(t *testing.T) {
	page := detailPage(posterBlock, nameBlock,
		`<div class="film-description"><div> A <i>cursed</i> object, see <a href="/jujutsu-kaisen-0-movie-17763">the movie</a>. </div></div>`)
	sc := newTestScraper(&stubEngine{result: &engine.FetchResult{StatusCode: 200, Body: page}})

	tests := []struct {
		format string
		want   string
	}{
		{models.SynopsisHTML, `A <i>cursed</i> object, see <a href="/jujutsu-kaisen-0-movie-17763">the movie</a>.`},
		{models.SynopsisText, "A cursed object, see the movie."},
		{models.SynopsisMarkdown, "A *cursed* object, see [the movie](https://zoro.to/jujutsu-kaisen-0-movie-17763)."},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			detail, err := sc.Info(context.Background(), "jujutsu-kaisen-tv-534", tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, detail.Synopsis)
			assert.Equal(t, "Jujutsu Kaisen (TV)", detail.Name)
		})
	}

	_, err := sc.Info(context.Background(), "jujutsu-kaisen-tv-534", "pdf")
	assert.True(t, models.IsCode(err, models.ErrCodeInvalidInput))
}

func TestScraper_LogsRedirectTarget(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	eng := &stubEngine{result: &engine.FetchResult{
		StatusCode: 200,
		Body:       searchPage(""),
		FinalURL:   "https://hianime.to/search?keyword=bleach",
		EngineName: "stub",
	}}
	_, err := newTestScraper(eng).Search(context.Background(), "bleach")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"upstream page fetched"`)
	assert.Contains(t, out, `"final_url":"https://hianime.to/search?keyword=bleach"`)
	assert.Contains(t, out, `"engine":"stub"`)
}
