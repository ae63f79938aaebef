package scrapers

import (
	"code/core"
	"code/helpers"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

const (
	titleHeading   = "Title"
	chapterHeading = "Chapter"
	sectionHeading = "Section"
)

type Scraper struct {
	baseURL string
}

func InitializeScraper(baseURL string) (*Scraper, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("error on parsing base url='%s': %v", baseURL, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("base url='%s' is not absolute", baseURL)
	}
	return &Scraper{baseURL: baseURL}, nil
}

func (scraper *Scraper) GetPageKind(contents io.Reader) (core.OhioCodePageKind, error) {
	doc, err := htmlquery.Parse(contents)
	if err != nil {
		return core.OhioCodePageKindError, fmt.Errorf("error on parsing html: %v", err)
	}
	// listing tables are told apart by their first header cell
	headerCell := htmlquery.FindOne(doc, headerCellsXPath)
	if headerCell != nil {
		headingStr := strings.TrimSpace(htmlquery.InnerText(headerCell))
		switch {
		case strings.HasPrefix(headingStr, titleHeading):
			return core.TitleListing, nil
		case strings.HasPrefix(headingStr, chapterHeading):
			return core.ChapterListing, nil
		case strings.HasPrefix(headingStr, sectionHeading):
			return core.SectionListing, nil
		}
	}
	if htmlquery.FindOne(doc, lawsBodyXPath) != nil {
		return core.SectionDetail, nil
	}
	return core.OhioCodePageKindError, errors.New("could not determine page kind")
}

func (scraper *Scraper) ExtractRecords(contents io.Reader, pageKind core.OhioCodePageKind) ([]core.Record, error) {
	switch pageKind {
	case core.TitleListing, core.ChapterListing, core.SectionListing:
		return scraper.extractRecordsFromTableXPath(contents, lawsTableRowsXPath)
	default:
		return nil, fmt.Errorf("error on extracting records: unsupported page kind %v", pageKind)
	}
}

func (scraper *Scraper) extractRecordsFromTableXPath(contents io.Reader, xpath string) ([]core.Record, error) {
	doc, err := htmlquery.Parse(contents)
	if err != nil {
		return nil, fmt.Errorf("error on parsing html: %v", err)
	}
	rowNodes := htmlquery.Find(doc, xpath)

	var records = make([]core.Record, 0, len(rowNodes))
	for i, rowNode := range rowNodes {
		if i == 0 && isHeaderRow(rowNode) {
			continue
		}
		aNode := htmlquery.FindOne(rowNode, hrefRelativeToRowXPath)
		if aNode == nil {
			continue
		}
		href := strings.TrimSpace(htmlquery.SelectAttr(aNode, "href"))
		if len(href) == 0 {
			continue
		}
		absoluteURL, err := helpers.ResolveURL(scraper.baseURL, href)
		if err != nil { // unusable link, same as no link
			continue
		}
		displayName := strings.TrimSpace(htmlquery.InnerText(aNode))
		number, name := helpers.SplitDisplayName(displayName)
		records = append(records, core.Record{
			ID:          helpers.IDFromURL(href),
			DisplayName: displayName,
			Number:      number,
			Name:        name,
			URL:         absoluteURL,
		})
	}
	return records, nil
}

// isHeaderRow reports whether a table's first row is a header. Only a row of
// th cells, or one without a link, counts. A first row such as
// <tr><td><a href="?sort=name">Chapter</a></td></tr> is kept as data.
func isHeaderRow(rowNode *html.Node) bool {
	if htmlquery.FindOne(rowNode, headerCellRelativeToRowXPath) != nil {
		return true
	}
	return htmlquery.FindOne(rowNode, hrefRelativeToRowXPath) == nil
}
