package core

import (
	"fmt"
	"time"
)

type FetchFailure struct {
	PageKind OhioCodePageKind
	URL      string
	Reason   string
}

func (failure FetchFailure) String() string {
	return fmt.Sprintf("%v url='%s': %s", failure.PageKind, failure.URL, failure.Reason)
}

// RunSummary separates listings that failed to fetch from listings that were
// fetched and simply had no children. It is logged, never persisted.
type RunSummary struct {
	RunID                 string
	StartedAt             time.Time
	FinishedAt            time.Time
	Titles                int
	Chapters              int
	Sections              int
	SectionDetailsFetched int
	EmptyListings         []string
	Failures              []FetchFailure
}

func NewRunSummary(runID string) *RunSummary {
	return &RunSummary{
		RunID:         runID,
		StartedAt:     time.Now(),
		EmptyListings: make([]string, 0),
		Failures:      make([]FetchFailure, 0),
	}
}

func (summary *RunSummary) RecordFailure(pageKind OhioCodePageKind, result FetchResult) {
	reason := "unknown error"
	if result.Err != nil {
		reason = result.Err.Error()
	}
	summary.Failures = append(summary.Failures, FetchFailure{PageKind: pageKind, URL: result.URL, Reason: reason})
}

func (summary *RunSummary) RecordEmpty(url string) {
	summary.EmptyListings = append(summary.EmptyListings, url)
}

func (summary *RunSummary) Finish() {
	summary.FinishedAt = time.Now()
}

func (summary *RunSummary) HasFailures() bool {
	return len(summary.Failures) > 0
}

func (summary *RunSummary) String() string {
	return fmt.Sprintf("titles=%d chapters=%d sections=%d section-details=%d empty-listings=%d failures=%d elapsed=%v",
		summary.Titles, summary.Chapters, summary.Sections, summary.SectionDetailsFetched,
		len(summary.EmptyListings), len(summary.Failures), summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond))
}
