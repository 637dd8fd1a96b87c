package scraper

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/zoroscrape/models"
)

// newMarkdownConverter creates a reusable, goroutine-safe Converter.
// Synopses are short prose with the odd <br> or <i>, so tables are not needed.
func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
}

// formatSynopsis renders the synopsis markup in the requested format.
// Relative links in markdown output are resolved against domain.
func formatSynopsis(conv *converter.Converter, markup, format, domain string) (string, error) {
	switch format {
	case "", models.SynopsisHTML:
		return markup, nil

	case models.SynopsisMarkdown:
		md, err := conv.ConvertString(markup, converter.WithDomain(domain))
		if err != nil {
			return "", models.NewScrapeError(models.ErrCodeInternal, "failed to convert synopsis to markdown", err)
		}
		return strings.TrimSpace(md), nil

	case models.SynopsisText:
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
		if err != nil {
			return "", models.NewScrapeError(models.ErrCodeInternal, "failed to parse synopsis", err)
		}
		return strings.TrimSpace(doc.Text()), nil

	default:
		return "", models.NewScrapeError(models.ErrCodeInvalidInput,
			fmt.Sprintf("unknown synopsis format %q", format), nil)
	}
}
