package helpers

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

const displayNameSeparator = "|"

// IDFromURL returns the last non-empty path segment of rawURL, ignoring any query
// or fragment. "/ohio-revised-code/title-1" gives "title-1".
func IDFromURL(rawURL string) string {
	path := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		path = parsed.Path
	}
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segment := strings.TrimSpace(segments[i]); segment != "" {
			return segment
		}
	}
	return ""
}

func ResolveURL(baseURL, href string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("error on parsing base url='%s': %v", baseURL, err)
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", fmt.Errorf("error on parsing href='%s': %v", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}

// SplitDisplayName splits link text like "Title 1 | State Government" into its
// number ("1") and name ("State Government"). Text without a separator has no
// number and is its own name.
func SplitDisplayName(displayName string) (string, string) {
	head, tail, found := strings.Cut(displayName, displayNameSeparator)
	if !found {
		return "", strings.TrimSpace(displayName)
	}
	var number string
	if fields := strings.Fields(head); len(fields) > 1 {
		number = fields[len(fields)-1]
	}
	return number, strings.TrimSpace(tail)
}

func IsLocalhostURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := parsed.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
