package core

import (
	"context"
	"io"
)

type OhioCodePageKind int

const (
	OhioCodePageKindError OhioCodePageKind = -1
	TitleListing          OhioCodePageKind = iota
	ChapterListing
	SectionListing
	SectionDetail
)

func (kind OhioCodePageKind) String() string {
	switch kind {
	case TitleListing:
		return "title listing"
	case ChapterListing:
		return "chapter listing"
	case SectionListing:
		return "section listing"
	case SectionDetail:
		return "section detail"
	default:
		return "unknown"
	}
}

// Record is one row of a listing table.
type Record struct {
	ID          string
	DisplayName string
	Number      string
	Name        string
	URL         string
}

type Title struct {
	ID          string    `json:"-"`
	DisplayName string    `json:"display_name"`
	Number      string    `json:"number,omitempty"`
	Name        string    `json:"name,omitempty"`
	URL         string    `json:"url"`
	Chapters    []Chapter `json:"chapters"`
}

type Chapter struct {
	DisplayName string    `json:"display_name"`
	Number      string    `json:"number,omitempty"`
	Name        string    `json:"name,omitempty"`
	URL         string    `json:"url"`
	Sections    []Section `json:"sections"`
}

// Section marshals its content key only when ContentFetched is set, so a
// listing-only run has no content keys while a content run keeps null ones.
type Section struct {
	DisplayName    string  `json:"display_name"`
	Number         string  `json:"number,omitempty"`
	Name           string  `json:"name,omitempty"`
	URL            string  `json:"url"`
	LastUpdated    *string `json:"last_updated"`
	Content        *string `json:"content"`
	ContentFetched bool    `json:"-"`
}

type SectionDetails struct {
	LastUpdated *string
	Content     *string
}

type Logger interface {
	Info(string, ...any)
	Warn(string, ...any)
	Debug(string, ...any)
	Error(string, ...any)
	Fatal(string, ...any)
}

type InterruptWatcher interface {
	StartBackgroundWatcher()
	IsInterrupted() bool
}

type WebClient interface {
	Fetch(context.Context, string) FetchResult
}

type OhioCodeScraper interface {
	GetPageKind(io.Reader) (OhioCodePageKind, error)
	ExtractRecords(io.Reader, OhioCodePageKind) ([]Record, error)
	ExtractSectionDetails(io.Reader) (SectionDetails, error)
}

type OutputStore interface {
	PutDocument(context.Context, string, []byte) error
}
