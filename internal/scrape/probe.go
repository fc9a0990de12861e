// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"io"
	"net/http"

	"github.com/pdiddy/deck2pdf/pkg/types"
)

// defaultMaxProbeSlides bounds the binary search when the config does not.
const defaultMaxProbeSlides = 300

// DetectSlideCount determines how many slides a presentation has by
// binary-searching HEAD requests against the CDN: slide n exists exactly
// when slides 0..n-1 exist, so the highest index that answers 200 fixes
// the count. Returns 0 when not even slide 0 exists. Request failures
// count as missing slides.
func DetectSlideCount(ctx context.Context, client *http.Client, id string, cfg types.ScrapeConfig) int {
	maxSlides := cfg.MaxProbeSlides
	if maxSlides <= 0 {
		maxSlides = defaultMaxProbeSlides
	}

	last := -1
	lo, hi := 0, maxSlides
	for lo <= hi {
		mid := (lo + hi) / 2
		if slideExists(ctx, client, id, mid, cfg) {
			last = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return last + 1
}

// slideExists probes a single slide URL with a HEAD request.
func slideExists(ctx context.Context, client *http.Client, id string, n int, cfg types.ScrapeConfig) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, slideURL(id, n), nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
