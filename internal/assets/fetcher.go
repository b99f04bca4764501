// Package assets fetches image bytes and dimensions over HTTP for the
// validation and rendering passes. Timeouts are local to each call; there
// is no pipeline-wide deadline.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	// Decoders for the formats print assets arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrFetchFailed indicates the asset bytes could not be retrieved.
var ErrFetchFailed = errors.New("asset fetch failed")

// maxAssetBytes bounds a single asset download. Print-resolution PNGs run
// tens of megabytes; anything past this is rejected rather than buffered.
const maxAssetBytes = 64 << 20

// Dimensions holds a probed image's pixel size.
type Dimensions struct {
	WidthPx  int
	HeightPx int
}

// Fetcher retrieves image assets over HTTP.
type Fetcher struct {
	http    *http.Client
	timeout time.Duration
}

// NewFetcher creates a Fetcher with the given per-call timeout. A
// non-positive timeout defaults to 30 seconds.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		http:    &http.Client{},
		timeout: timeout,
	}
}

// Fetch downloads the complete asset bytes.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrFetchFailed, err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d for %s", ErrFetchFailed, resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFetchFailed, err)
	}
	if len(data) > maxAssetBytes {
		return nil, fmt.Errorf("%w: asset exceeds %d bytes", ErrFetchFailed, maxAssetBytes)
	}
	return data, nil
}

// Probe fetches an asset and decodes only its header to report pixel
// dimensions.
func (f *Fetcher) Probe(ctx context.Context, url string) (Dimensions, error) {
	data, err := f.Fetch(ctx, url)
	if err != nil {
		return Dimensions{}, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: decoding %s: %v", ErrFetchFailed, url, err)
	}
	return Dimensions{WidthPx: cfg.Width, HeightPx: cfg.Height}, nil
}

// ProbeAll probes every URL concurrently and aggregates results by index,
// not arrival order. Each entry carries its own error so one bad asset
// never hides the others.
func (f *Fetcher) ProbeAll(ctx context.Context, urls []string) []ProbeResult {
	results := make([]ProbeResult, len(urls))

	done := make(chan struct{})
	for i, url := range urls {
		go func(i int, url string) {
			dims, err := f.Probe(ctx, url)
			results[i] = ProbeResult{URL: url, Dimensions: dims, Err: err}
			done <- struct{}{}
		}(i, url)
	}
	for range urls {
		<-done
	}
	close(done)

	return results
}

// ProbeResult pairs one probed URL with its outcome.
type ProbeResult struct {
	URL        string
	Dimensions Dimensions
	Err        error
}
