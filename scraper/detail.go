package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/zoroscrape/models"
)

const (
	synopsisSelector = "div.film-description > div"
	nameSelector     = "h2.film-name.dynamic-name"
	posterSelector   = "img.film-poster-img"
)

// ExtractDetail reads the name, synopsis and poster image of a title detail
// page. Name and synopsis are the trimmed inner markup of their elements;
// the poster URL is the img src as written. If any of the three is missing
// no partial result is returned.
func ExtractDetail(rawHTML string) (*models.AnimeDetail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeExtraction, "failed to parse detail page", err)
	}

	synopsis, err := trimmedInnerHTML(doc, synopsisSelector, "synopsis")
	if err != nil {
		return nil, err
	}

	name, err := trimmedInnerHTML(doc, nameSelector, "name")
	if err != nil {
		return nil, err
	}

	poster := doc.Find(posterSelector).First()
	if poster.Length() == 0 {
		return nil, missingElement("poster image", posterSelector)
	}
	src, ok := poster.Attr("src")
	if !ok {
		return nil, models.NewScrapeError(models.ErrCodeExtraction,
			fmt.Sprintf("poster image %q has no src attribute", posterSelector), nil)
	}

	return &models.AnimeDetail{
		Name:        name,
		Synopsis:    synopsis,
		PosterImage: src,
	}, nil
}

func trimmedInnerHTML(doc *goquery.Document, selector, field string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", missingElement(field, selector)
	}
	inner, err := sel.Html()
	if err != nil {
		return "", models.NewScrapeError(models.ErrCodeExtraction, "failed to render "+field, err)
	}
	return strings.TrimSpace(inner), nil
}

func missingElement(field, selector string) *models.ScrapeError {
	return models.NewScrapeError(models.ErrCodeExtraction,
		fmt.Sprintf("no %s element matching %q; the page layout may have changed", field, selector), nil)
}
