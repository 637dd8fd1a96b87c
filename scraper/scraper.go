package scraper

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/use-agent/zoroscrape/config"
	"github.com/use-agent/zoroscrape/engine"
	"github.com/use-agent/zoroscrape/models"
)

// Scraper fetches and extracts pages of the anime site.
// It holds no per-request state and is safe for concurrent use.
type Scraper struct {
	engine      engine.Engine
	baseURL     string
	mdConverter *converter.Converter
}

// NewScraper creates a Scraper that fetches through eng.
func NewScraper(eng engine.Engine, site config.SiteConfig) *Scraper {
	return &Scraper{
		engine:      eng,
		baseURL:     site.BaseURL,
		mdConverter: newMarkdownConverter(),
	}
}

// SearchURL builds the site's search URL for a title keyword.
func (s *Scraper) SearchURL(name string) string {
	return s.baseURL + "/search?keyword=" + url.QueryEscape(name)
}

// InfoURL builds the detail page URL for a title slug.
func (s *Scraper) InfoURL(animeID string) string {
	return s.baseURL + "/" + url.PathEscape(animeID) + "?ref=search"
}

// Search queries the site for name and returns the identifiers found.
func (s *Scraper) Search(ctx context.Context, name string) (*models.SearchResponse, error) {
	target := s.SearchURL(name)

	body, err := s.fetchPage(ctx, target)
	if err != nil {
		return nil, err
	}

	resp, err := ExtractSearch(body)
	if err != nil {
		slog.Warn("search extraction failed", "url", target, "error", err)
		return nil, err
	}
	slog.Debug("search extracted", "url", target, "results", len(resp.Results))
	return resp, nil
}

// Info fetches the detail page of animeID. synopsisFormat is one of
// models.SynopsisHTML, models.SynopsisMarkdown or models.SynopsisText.
func (s *Scraper) Info(ctx context.Context, animeID, synopsisFormat string) (*models.AnimeDetail, error) {
	target := s.InfoURL(animeID)

	body, err := s.fetchPage(ctx, target)
	if err != nil {
		return nil, err
	}

	detail, err := ExtractDetail(body)
	if err != nil {
		slog.Warn("detail extraction failed", "url", target, "error", err)
		return nil, err
	}

	detail.Synopsis, err = formatSynopsis(s.mdConverter, detail.Synopsis, synopsisFormat, s.baseURL)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// fetchPage GETs target and returns the body of a 2xx answer. Any other
// status becomes an UPSTREAM_STATUS error.
func (s *Scraper) fetchPage(ctx context.Context, target string) (string, error) {
	slog.Debug("fetching upstream page", "url", target)

	res, err := s.engine.Fetch(ctx, &engine.FetchRequest{URL: target})
	if err != nil {
		slog.Warn("upstream fetch failed", "url", target, "error", err)
		return "", err
	}
	if !res.OK() {
		slog.Warn("upstream returned non-success status",
			"url", target, "final_url", res.FinalURL, "status", res.StatusCode)
		return "", models.NewUpstreamStatusError(res.StatusCode, target)
	}
	slog.Debug("upstream page fetched",
		"url", target,
		"final_url", res.FinalURL,
		"status", res.StatusCode,
		"engine", res.EngineName,
		"bytes", len(res.Body),
	)
	return res.Body, nil
}
