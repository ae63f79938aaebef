package scrapers

import (
	"code/core"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const lastUpdatedMarker = "Last updated"

func (scraper *Scraper) ExtractSectionDetails(contents io.Reader) (core.SectionDetails, error) {
	doc, err := goquery.NewDocumentFromReader(contents)
	if err != nil {
		return core.SectionDetails{}, fmt.Errorf("error on parsing html: %v", err)
	}
	return core.SectionDetails{
		LastUpdated: extractLastUpdated(doc),
		Content:     extractContent(doc),
	}, nil
}

func extractLastUpdated(doc *goquery.Document) *string {
	var lastUpdated *string
	doc.Find(paragraphSelector).EachWithBreak(func(_ int, paragraph *goquery.Selection) bool {
		text := paragraph.Text()
		if !strings.Contains(text, lastUpdatedMarker) {
			return true
		}
		value := strings.TrimSpace(strings.ReplaceAll(text, lastUpdatedMarker, ""))
		value = strings.TrimSpace(strings.TrimPrefix(value, ":"))
		lastUpdated = &value
		return false
	})
	return lastUpdated
}

// extractContent joins the trimmed, non-empty paragraphs of the first laws body
// with single spaces. A missing body gives nil, a body without text gives "".
func extractContent(doc *goquery.Document) *string {
	body := doc.Find(contentSectionSelector).First()
	if body.Length() == 0 {
		return nil
	}
	paragraphs := make([]string, 0)
	body.Find(paragraphSelector).Each(func(_ int, paragraph *goquery.Selection) {
		if text := strings.TrimSpace(paragraph.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	content := strings.Join(paragraphs, " ")
	return &content
}
