package application

import (
	"errors"
	"strings"
)

const OhioCodesBaseURL = "https://codes.ohio.gov"
const OhioRevisedCodeRootPath = "/ohio-revised-code"

var ErrInterrupted = errors.New("traversal interrupted")

// TraversalConfig is everything the driver needs to know about the site. It is
// passed in by the caller rather than read from globals.
type TraversalConfig struct {
	RunID        string
	BaseURL      string
	RootPath     string
	FetchContent bool
}

func (cfg TraversalConfig) StartURL() string {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = OhioCodesBaseURL
	}
	rootPath := cfg.RootPath
	if rootPath == "" {
		rootPath = OhioRevisedCodeRootPath
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(rootPath, "/")
}
