package ucdblocks

import (
	"fmt"
	"io"
	"net/http"
)

// LatestURL is the canonical publication location of the most recent
// Blocks.txt.
const LatestURL = "https://www.unicode.org/Public/UCD/latest/ucd/Blocks.txt"

// Download fetches the latest Blocks.txt from the Unicode website and parses
// it into a block table. A nil client means http.DefaultClient. The fetch is
// a single GET without retries; any failure is wrapped in a *DownloadError
// with the cause chained.
func Download(client *http.Client) (*BlockTable, error) {
	return DownloadFrom(client, LatestURL)
}

// DownloadFrom is like Download, but fetches from a caller-supplied URL,
// e.g. a mirror or a versioned UCD directory.
func DownloadFrom(client *http.Client, url string) (*BlockTable, error) {
	text, err := FetchText(client, url)
	if err != nil {
		return nil, err
	}
	table, err := Parse(text)
	if err != nil {
		return nil, &DownloadError{cause: err}
	}
	return table, nil
}

// FetchText retrieves raw Blocks.txt data from url without parsing it,
// for callers that want to keep the downloaded text, e.g. to save it to
// disk. A nil client means http.DefaultClient. Transport and body-read
// failures are wrapped in a *DownloadError.
func FetchText(client *http.Client, url string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	T().Infof("downloading %s", url)
	resp, err := client.Get(url)
	if err != nil {
		return "", &DownloadError{cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", &DownloadError{cause: fmt.Errorf("GET %s: %s", url, resp.Status)}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &DownloadError{cause: fmt.Errorf("failed to read response body: %w", err)}
	}
	return string(data), nil
}
