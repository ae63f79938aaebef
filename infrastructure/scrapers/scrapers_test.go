package scrapers

import (
	"code/core"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDataFolder         = "test_data"
	testBaseURL            = "https://codes.ohio.gov"
	titleListing           = "title_listing.html"
	chapterListing         = "chapter_listing.html"
	sectionListing         = "section_listing.html"
	headerOnly             = "header_only.html"
	noRows                 = "no_rows.html"
	noHeader               = "no_header.html"
	sectionDetail          = "section_detail.html"
	sectionDetailMissing   = "section_detail_missing.html"
	sectionDetailEmptyBody = "section_detail_empty_body.html"
	sectionDetailTwoBodies = "section_detail_two_bodies.html"
	sectionDetailEmptyPara = "section_detail_empty_paragraph.html"
	tdHeader               = "td_header.html"
	unknownPage            = "unknown.html"
)

type pageKindTest struct {
	testKind core.OhioCodePageKind
	fileName string
}

var pageKindTests = []pageKindTest{
	{testKind: core.TitleListing, fileName: titleListing},
	{testKind: core.ChapterListing, fileName: chapterListing},
	{testKind: core.SectionListing, fileName: sectionListing},
	{testKind: core.SectionListing, fileName: headerOnly},
	{testKind: core.SectionDetail, fileName: sectionDetail},
	{testKind: core.SectionDetail, fileName: sectionDetailEmptyBody},
}

type extractRecordsTest struct {
	fileName string
	pageKind core.OhioCodePageKind
	records  []core.Record
}

var extractRecordsTests = []extractRecordsTest{
	{fileName: titleListing, pageKind: core.TitleListing, records: titleListingRecords},
	{fileName: chapterListing, pageKind: core.ChapterListing, records: chapterListingRecords},
	{fileName: sectionListing, pageKind: core.SectionListing, records: sectionListingRecords},
	{fileName: headerOnly, pageKind: core.SectionListing, records: []core.Record{}},
	{fileName: noRows, pageKind: core.SectionListing, records: []core.Record{}},
	{fileName: noHeader, pageKind: core.ChapterListing, records: noHeaderRecords},
	{fileName: tdHeader, pageKind: core.ChapterListing, records: noHeaderRecords[:1]},
}

func stringPtr(value string) *string {
	return &value
}

type extractSectionDetailsTest struct {
	fileName string
	details  core.SectionDetails
}

var extractSectionDetailsTests = []extractSectionDetailsTest{
	{fileName: sectionDetail, details: core.SectionDetails{LastUpdated: stringPtr("January 1, 2020"), Content: stringPtr("Foo. Bar.")}},
	{fileName: sectionDetailEmptyBody, details: core.SectionDetails{LastUpdated: stringPtr("September 29, 2013 at 2:23 PM"), Content: stringPtr("")}},
	{fileName: sectionDetailMissing, details: core.SectionDetails{}},
	{fileName: sectionDetailTwoBodies, details: core.SectionDetails{LastUpdated: stringPtr("January 1, 2020"), Content: stringPtr("Foo. Bar.")}},
	{fileName: sectionDetailEmptyPara, details: core.SectionDetails{Content: stringPtr("Foo. Bar.")}},
}

func TestScrapers(t *testing.T) {
	scraper, err := InitializeScraper(testBaseURL)
	require.NoError(t, err)

	t.Run("testing InitializeScraper", func(t *testing.T) {
		_, err := InitializeScraper("/ohio-revised-code")
		assert.Error(t, err, "relative base url must be rejected")
		_, err = InitializeScraper("://codes.ohio.gov")
		assert.Error(t, err)
	})

	t.Run("testing GetPageKind", func(t *testing.T) {
		for _, test := range pageKindTests {
			contents, err := readContents(test.fileName)
			require.NoError(t, err, "error on reading text file contents: %v", err)
			pageKind, err := scraper.GetPageKind(contents)
			if assert.NoError(t, err, "error on inferring page kind for %s: %v", test.fileName, err) {
				assert.Equal(t, test.testKind, pageKind, "expected page kind is not equal to actual page kind for %s", test.fileName)
			}
		}

		for _, fileName := range []string{noRows, unknownPage} {
			contents, err := readContents(fileName)
			require.NoError(t, err)
			pageKind, err := scraper.GetPageKind(contents)
			assert.Error(t, err, "expected error for %s", fileName)
			assert.Equal(t, core.OhioCodePageKindError, pageKind)
		}
	})

	t.Run("testing ExtractRecords", func(t *testing.T) {
		for _, test := range extractRecordsTests {
			contents, err := readContents(test.fileName)
			require.NoError(t, err, "error on reading text file contents: %v", err)
			records, err := scraper.ExtractRecords(contents, test.pageKind)
			if assert.NoError(t, err, "error on extract records from %s: %v", test.fileName, err) {
				assert.Equal(t, test.records, records, "records differ for %s", test.fileName)
			}
		}
	})

	t.Run("testing ExtractRecords keeps N data rows", func(t *testing.T) {
		for n := 0; n < 5; n++ {
			var builder strings.Builder
			builder.WriteString(`<table class="laws-table"><tr><th>Section</th></tr>`)
			for i := 0; i < n; i++ {
				fmt.Fprintf(&builder, `<tr><td><a href="/ohio-revised-code/section-9.%02d">Section 9.%02d | Row.</a></td></tr>`, i, i)
			}
			builder.WriteString(`</table>`)
			records, err := scraper.ExtractRecords(strings.NewReader(builder.String()), core.SectionListing)
			if assert.NoError(t, err) {
				assert.Len(t, records, n)
			}
		}
	})

	t.Run("testing ExtractRecords rejects section detail", func(t *testing.T) {
		contents, err := readContents(sectionDetail)
		require.NoError(t, err)
		_, err = scraper.ExtractRecords(contents, core.SectionDetail)
		assert.Error(t, err)
	})

	t.Run("testing ExtractSectionDetails", func(t *testing.T) {
		for _, test := range extractSectionDetailsTests {
			contents, err := readContents(test.fileName)
			require.NoError(t, err, "error on reading text file contents: %v", err)
			details, err := scraper.ExtractSectionDetails(contents)
			if assert.NoError(t, err, "error on extracting section details: %v", err) {
				assert.Equal(t, test.details, details, "section details differ for %s", test.fileName)
			}
		}
	})
}

func readContents(fileName string) (io.Reader, error) {
	relativeFilePath := "./" + testDataFolder + "/" + fileName
	contents, err := os.ReadFile(relativeFilePath)
	if err != nil {
		return nil, fmt.Errorf("error on opening file: %v", err)
	}
	return strings.NewReader(string(contents)), nil
}
