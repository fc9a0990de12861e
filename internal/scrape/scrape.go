// Package scrape validates Speaker Deck presentation URLs and turns a
// presentation page into an ordered set of slide image URLs.
// Implements: docs/ARCHITECTURE § Scrape.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/deck2pdf/pkg/types"
)

// Sentinel errors for the scrape stage.
var (
	ErrInvalidURL = errors.New("not a Speaker Deck presentation URL")
	ErrPageFetch  = errors.New("fetching presentation page failed")
	ErrNoSlides   = errors.New("no slide images found in page")
)

// Base URLs for the presentation site and its image CDN. Declared as vars
// so tests can substitute httptest servers.
var (
	pageBaseURL = "https://speakerdeck.com"
	fileBaseURL = "https://files.speakerdeck.com"
)

// FetchDeck retrieves the presentation page for ref, extracts the deck
// title and presentation ID, determines the slide count (probing the CDN
// when the markup alone does not reveal it), and returns the deck with its
// slide image URLs in presentation order.
func FetchDeck(ctx context.Context, client *http.Client, ref DeckRef, cfg types.ScrapeConfig, w io.Writer) (*types.Deck, error) {
	pageURL := ref.PageURL()
	fmt.Fprintf(w, "Fetching presentation: %s\n", pageURL)

	page, err := fetchPage(ctx, client, pageURL, cfg)
	if err != nil {
		return nil, err
	}

	res := Extract(page)
	if res.ID == "" {
		return nil, fmt.Errorf("%w: presentation ID not found (site markup may have changed)", ErrNoSlides)
	}

	count := res.Count
	if count == 0 {
		fmt.Fprintln(w, "Detecting number of slides...")
		count = DetectSlideCount(ctx, client, res.ID, cfg)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: could not determine the slide count for presentation %s", ErrNoSlides, res.ID)
	}

	fmt.Fprintf(w, "Found presentation ID: %s\n", res.ID)
	fmt.Fprintf(w, "Total slides: %d\n", count)

	return &types.Deck{
		ID:        res.ID,
		SourceURL: pageURL,
		Title:     res.Title,
		Slides:    count,
		ImageURLs: SlideURLs(res.ID, count),
		FetchedAt: time.Now().UTC(),
	}, nil
}

// fetchPage performs the single presentation page GET and returns the raw
// HTML text.
func fetchPage(ctx context.Context, client *http.Client, pageURL string, cfg types.ScrapeConfig) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", ErrPageFetch, err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: HTTP %d from %s", ErrPageFetch, resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading page body: %v", ErrPageFetch, err)
	}
	return string(body), nil
}
