package clients

import (
	"bytes"
	"code/core"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

type HTTPClientHelper struct {
	client    *http.Client
	rateLimit time.Duration
	logger    core.Logger
}

func InitializeHTTPClientHelper(requestTimeout, rateLimit time.Duration, logger core.Logger) (*HTTPClientHelper, error) {
	if rateLimit < 0 {
		return nil, fmt.Errorf("rate limit must not be negative, got %v", rateLimit)
	}
	client := &http.Client{Timeout: requestTimeout}
	return &HTTPClientHelper{client: client, rateLimit: rateLimit, logger: logger}, nil
}

// Fetch never fails: transport errors and non-2xx responses are logged and
// reported as core.FetchFailed. Every successful request is followed by the
// fixed rate limit delay.
func (httpClientHelper *HTTPClientHelper) Fetch(ctx context.Context, url string) core.FetchResult {
	data, err := httpClientHelper.GetHTML(ctx, url)
	if err != nil {
		httpClientHelper.logger.Error("error fetching %s: %v", url, err)
		return core.FetchResultFailed(url, err)
	}
	httpClientHelper.wait(ctx)
	if len(bytes.TrimSpace(data)) == 0 {
		return core.FetchResultEmpty(url)
	}
	return core.FetchResultOK(url, data)
}

func (httpClientHelper *HTTPClientHelper) GetHTML(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error on creating request for url='%s': %v", url, err)
	}
	resp, err := httpClientHelper.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error on Get url for url='%s': %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("non-ok status code received for url='%s', got status-code=%d", url, resp.StatusCode)
	}
	utf8Body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("error on charset reader for url='%s': %v", url, err)
	}
	data, err := io.ReadAll(utf8Body)
	if err != nil {
		return nil, fmt.Errorf("error on readall for url='%s': %v", url, err)
	}
	return data, nil
}

func (httpClientHelper *HTTPClientHelper) wait(ctx context.Context) {
	if httpClientHelper.rateLimit <= 0 {
		return
	}
	timer := time.NewTimer(httpClientHelper.rateLimit)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
