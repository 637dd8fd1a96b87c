package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/samber/lo"
	"github.com/use-agent/zoroscrape/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// listSelector matches the element wrapping the film list.
	listSelector = "div.film_list-wrap"

	// anchorSelector matches the title link of each result card. It is
	// evaluated against a fragment re-parsed from the list's inner markup.
	anchorSelector = "div.flw-item > div:nth-child(2) > h3:nth-child(1) > a:nth-child(1)"

	searchRefSuffix = "?ref=search"
)

var anchorMatcher = cascadia.MustCompile(anchorSelector)

// ExtractSearch returns the title identifiers of a search results page in
// document order. A page without a results list, or a list without result
// cards, yields an empty (non-nil) result set.
//
// A result anchor lacking an href fails the whole extraction.
func ExtractSearch(rawHTML string) (*models.SearchResponse, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeExtraction, "failed to parse search page", err)
	}

	var (
		ids        []string
		extractErr error
	)
	doc.Find(listSelector).EachWithBreak(func(_ int, list *goquery.Selection) bool {
		inner, err := list.Html()
		if err != nil {
			extractErr = models.NewScrapeError(models.ErrCodeExtraction, "failed to render results list", err)
			return false
		}
		found, err := fragmentIDs(inner)
		if err != nil {
			extractErr = err
			return false
		}
		ids = append(ids, found...)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return &models.SearchResponse{
		Results: lo.Map(ids, func(id string, _ int) models.SearchResultItem {
			return models.SearchResultItem{ID: id}
		}),
	}, nil
}

// fragmentIDs parses markup as a standalone fragment under a synthetic
// <html> root and collects the normalized href of every result anchor.
func fragmentIDs(markup string) ([]string, error) {
	bodyCtx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), bodyCtx)
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeExtraction, "failed to parse results fragment", err)
	}

	root := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	anchors := cascadia.QueryAll(root, anchorMatcher)
	ids := make([]string, 0, len(anchors))
	for _, a := range anchors {
		href, ok := attr(a, "href")
		if !ok {
			return nil, models.NewScrapeError(models.ErrCodeExtraction, "search result link has no href", nil)
		}
		ids = append(ids, NormalizeID(href))
	}
	return ids, nil
}

// NormalizeID turns a result link such as "/jujutsu-kaisen-tv-534?ref=search"
// into the bare slug. Every slash is removed, not only the leading one.
func NormalizeID(href string) string {
	id := strings.ReplaceAll(href, searchRefSuffix, "")
	return strings.ReplaceAll(id, "/", "")
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
