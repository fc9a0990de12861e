// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Deck holds everything scraped from a Speaker Deck presentation page.
// It is built once by the scrape stage and flows unchanged through
// download and assembly.
type Deck struct {
	// ID is the hex presentation identifier embedded in slide image URLs.
	ID string `json:"id" yaml:"id"`

	// SourceURL is the presentation page the deck was scraped from.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// Title is the presentation title as published on the page.
	Title string `json:"title" yaml:"title"`

	// Slides is the number of slides in the deck.
	Slides int `json:"slides" yaml:"slides"`

	// ImageURLs lists one slide image URL per slide, in presentation order.
	// Excluded from the sidecar record; the count is what matters there.
	ImageURLs []string `json:"-" yaml:"-"`

	// PDFPath is the local filesystem path of the assembled PDF.
	// Empty until assembly succeeds.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// FetchedAt records when the presentation page was fetched.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// SlideImage is one downloaded slide, held in memory between the download
// and assembly stages.
type SlideImage struct {
	// Index is the zero-based slide position within the deck.
	Index int

	// Data is the raw image bytes as served by the CDN.
	Data []byte
}
