package application

import (
	"bytes"
	"code/core"
	"context"

	"github.com/google/uuid"
)

type traversal struct {
	cfg              TraversalConfig
	webClient        core.WebClient
	scraper          core.OhioCodeScraper
	interruptWatcher core.InterruptWatcher
	logger           core.Logger
	summary          *core.RunSummary
}

// ScrapeOhioRevisedCode walks titles, then chapters, then sections, one request
// at a time. Fetch and parse failures leave the affected node with no children
// and are recorded in the returned summary; only an interrupt stops the walk, in
// which case no titles are returned.
func ScrapeOhioRevisedCode(ctx context.Context, cfg TraversalConfig, webClient core.WebClient, scraper core.OhioCodeScraper, interruptWatcher core.InterruptWatcher, logger core.Logger) (*core.TitleMap, *core.RunSummary, error) {
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	t := &traversal{
		cfg:              cfg,
		webClient:        webClient,
		scraper:          scraper,
		interruptWatcher: interruptWatcher,
		logger:           logger,
		summary:          core.NewRunSummary(cfg.RunID),
	}

	titles, err := t.scrapeTitles(ctx)
	t.summary.Finish()
	if err != nil {
		logger.Warn("scraping stopped early: %v (%v)", err, t.summary)
		return nil, t.summary, err
	}

	logger.Info("scraping done: %v", t.summary)
	for _, failure := range t.summary.Failures {
		logger.Warn("failed %v", failure)
	}
	return titles, t.summary, nil
}

func (t *traversal) scrapeTitles(ctx context.Context) (*core.TitleMap, error) {
	startURL := t.cfg.StartURL()
	t.logger.Info("scraping titles from url='%s'", startURL)
	titleRecords, err := t.fetchRecords(ctx, startURL, core.TitleListing)
	if err != nil {
		return nil, err
	}

	titles := core.NewTitleMap()
	for _, record := range titleRecords {
		titles.Put(core.Title{
			ID:          record.ID,
			DisplayName: record.DisplayName,
			Number:      record.Number,
			Name:        record.Name,
			URL:         record.URL,
			Chapters:    []core.Chapter{},
		})
	}
	t.summary.Titles = titles.Len()

	for i, title := range titles.Titles() {
		t.logger.Info("scraping title %d/%d: %s", i+1, titles.Len(), title.DisplayName)
		chapters, err := t.scrapeChapters(ctx, title)
		if err != nil {
			return nil, err
		}
		title.Chapters = chapters
	}
	return titles, nil
}

func (t *traversal) scrapeChapters(ctx context.Context, title *core.Title) ([]core.Chapter, error) {
	chapterRecords, err := t.fetchRecords(ctx, title.URL, core.ChapterListing)
	if err != nil {
		return nil, err
	}
	chapters := make([]core.Chapter, 0, len(chapterRecords))
	for _, record := range chapterRecords {
		chapters = append(chapters, core.Chapter{
			DisplayName: record.DisplayName,
			Number:      record.Number,
			Name:        record.Name,
			URL:         record.URL,
			Sections:    []core.Section{},
		})
	}
	t.summary.Chapters += len(chapters)

	for i := range chapters {
		chapter := &chapters[i]
		t.logger.Info("scraping %s chapter %d/%d: %s", title.ID, i+1, len(chapters), chapter.DisplayName)
		sections, err := t.scrapeSections(ctx, chapter)
		if err != nil {
			return nil, err
		}
		chapter.Sections = sections
	}
	return chapters, nil
}

func (t *traversal) scrapeSections(ctx context.Context, chapter *core.Chapter) ([]core.Section, error) {
	sectionRecords, err := t.fetchRecords(ctx, chapter.URL, core.SectionListing)
	if err != nil {
		return nil, err
	}
	sections := make([]core.Section, 0, len(sectionRecords))
	for _, record := range sectionRecords {
		section := core.Section{
			DisplayName: record.DisplayName,
			Number:      record.Number,
			Name:        record.Name,
			URL:         record.URL,
		}
		if t.cfg.FetchContent {
			details, err := t.fetchSectionDetails(ctx, record.URL)
			if err != nil {
				return nil, err
			}
			section.LastUpdated = details.LastUpdated
			section.Content = details.Content
			section.ContentFetched = true
		}
		sections = append(sections, section)
	}
	t.summary.Sections += len(sections)
	return sections, nil
}

// fetchRecords only returns an error when the walk must stop. Any other problem
// is recorded and yields an empty slice.
func (t *traversal) fetchRecords(ctx context.Context, url string, pageKind core.OhioCodePageKind) ([]core.Record, error) {
	result, err := t.fetch(ctx, url, pageKind)
	if err != nil {
		return nil, err
	}
	if !result.HasBody() {
		return []core.Record{}, nil
	}

	t.checkPageKind(result, pageKind)
	records, err := t.scraper.ExtractRecords(bytes.NewReader(result.Body), pageKind)
	if err != nil {
		t.logger.Error("error on extracting records from url='%s': %v", url, err)
		t.summary.RecordFailure(pageKind, core.FetchResultFailed(url, err))
		return []core.Record{}, nil
	}
	if len(records) == 0 {
		t.summary.RecordEmpty(url)
	}
	return records, nil
}

func (t *traversal) fetchSectionDetails(ctx context.Context, url string) (core.SectionDetails, error) {
	result, err := t.fetch(ctx, url, core.SectionDetail)
	if err != nil {
		return core.SectionDetails{}, err
	}
	if !result.HasBody() {
		return core.SectionDetails{}, nil
	}
	details, err := t.scraper.ExtractSectionDetails(bytes.NewReader(result.Body))
	if err != nil {
		t.logger.Error("error on extracting section details from url='%s': %v", url, err)
		t.summary.RecordFailure(core.SectionDetail, core.FetchResultFailed(url, err))
		return core.SectionDetails{}, nil
	}
	t.summary.SectionDetailsFetched++
	return details, nil
}

func (t *traversal) fetch(ctx context.Context, url string, pageKind core.OhioCodePageKind) (core.FetchResult, error) {
	if t.isInterrupted(ctx) {
		return core.FetchResult{}, ErrInterrupted
	}
	t.logger.Debug("getting %v for url='%s'", pageKind, url)
	result := t.webClient.Fetch(ctx, url)
	switch result.Status {
	case core.FetchFailed:
		// a request cut short by the interrupt is not a site failure
		if t.isInterrupted(ctx) {
			return core.FetchResult{}, ErrInterrupted
		}
		t.summary.RecordFailure(pageKind, result)
	case core.FetchEmpty:
		if pageKind != core.SectionDetail {
			t.summary.RecordEmpty(url)
		}
	}
	return result, nil
}

func (t *traversal) checkPageKind(result core.FetchResult, expected core.OhioCodePageKind) {
	pageKind, err := t.scraper.GetPageKind(bytes.NewReader(result.Body))
	if err != nil {
		t.logger.Debug("could not determine page kind for url='%s': %v", result.URL, err)
		return
	}
	if pageKind != expected {
		t.logger.Warn("expected %v at url='%s' but page looks like %v", expected, result.URL, pageKind)
	}
}

func (t *traversal) isInterrupted(ctx context.Context) bool {
	return ctx.Err() != nil || (t.interruptWatcher != nil && t.interruptWatcher.IsInterrupted())
}
