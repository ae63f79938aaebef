package core

type FetchStatus int

const (
	FetchOK FetchStatus = iota
	FetchEmpty
	FetchFailed
)

func (status FetchStatus) String() string {
	switch status {
	case FetchOK:
		return "ok"
	case FetchEmpty:
		return "empty"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchResult is the outcome of a single GET. Body is set only for FetchOK and
// Err only for FetchFailed.
type FetchResult struct {
	URL    string
	Status FetchStatus
	Body   []byte
	Err    error
}

func FetchResultOK(url string, body []byte) FetchResult {
	return FetchResult{URL: url, Status: FetchOK, Body: body}
}

func FetchResultEmpty(url string) FetchResult {
	return FetchResult{URL: url, Status: FetchEmpty}
}

func FetchResultFailed(url string, err error) FetchResult {
	return FetchResult{URL: url, Status: FetchFailed, Err: err}
}

func (result FetchResult) HasBody() bool {
	return result.Status == FetchOK && len(result.Body) > 0
}
