// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package download retrieves slide images one at a time, pacing requests
// with a politeness delay and aborting the run on the first failure.
// Implements: docs/ARCHITECTURE § Download.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/pdiddy/deck2pdf/internal/httputil"
	"github.com/pdiddy/deck2pdf/pkg/types"
)

// ErrSlideDownload reports a slide image that could not be retrieved.
var ErrSlideDownload = errors.New("slide download failed")

// Slides downloads every URL in order and returns one image per slide,
// images[i] holding the bytes of urls[i]. Requests are strictly
// sequential with cfg.Delay between consecutive fetches; rate-limited
// responses are retried with backoff up to cfg.MaxRetries. Any failure
// aborts the whole run with ErrSlideDownload naming the slide index and
// URL; no partial result is returned.
func Slides(ctx context.Context, client *http.Client, urls []string, cfg types.DownloadConfig, w io.Writer) ([]types.SlideImage, error) {
	fmt.Fprintf(w, "Downloading %d slides...\n", len(urls))
	bar := progressbar.NewOptions(len(urls),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("slides"),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
	)

	images := make([]types.SlideImage, 0, len(urls))
	for i, url := range urls {
		if i > 0 && cfg.Delay > 0 {
			time.Sleep(cfg.Delay)
		}
		data, err := fetchImage(ctx, client, url, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: slide %d (%s): %v", ErrSlideDownload, i, url, err)
		}
		images = append(images, types.SlideImage{Index: i, Data: data})
		bar.Add(1)
	}
	return images, nil
}

// fetchImage performs one image GET, retrying on HTTP 429.
func fetchImage(ctx context.Context, client *http.Client, url string, cfg types.DownloadConfig) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading image body: %w", err)
	}
	return data, nil
}
