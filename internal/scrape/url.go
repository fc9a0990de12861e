// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"fmt"
	"regexp"
	"strings"
)

// deckURLPattern matches a presentation page URL: http or https, the
// site host, then exactly two path segments (owner, deck slug).
var deckURLPattern = regexp.MustCompile(`^https?://speakerdeck\.com/([\w-]+)/([\w-]+)$`)

// DeckRef identifies one presentation by its owner and URL slug.
// Created from CLI input, validated once, immutable after that.
type DeckRef struct {
	Owner string
	Slug  string
}

// ParseDeckURL validates raw as a presentation page URL and returns its
// owner/slug pair. Surrounding whitespace is ignored. Anything that is not
// scheme://speakerdeck.com/<owner>/<slug> fails with ErrInvalidURL.
func ParseDeckURL(raw string) (DeckRef, error) {
	m := deckURLPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return DeckRef{}, fmt.Errorf("%w: %q (expected https://speakerdeck.com/<user>/<deck>)", ErrInvalidURL, raw)
	}
	return DeckRef{Owner: m[1], Slug: m[2]}, nil
}

// PageURL returns the presentation page URL for the deck.
func (r DeckRef) PageURL() string {
	return fmt.Sprintf("%s/%s/%s", pageBaseURL, r.Owner, r.Slug)
}
