// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDeckURL(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwner string
		wantSlug  string
		wantErr   bool
	}{
		{"https", "https://speakerdeck.com/gopher/going-faster", "gopher", "going-faster", false},
		{"http", "http://speakerdeck.com/gopher/going-faster", "gopher", "going-faster", false},
		{"underscores", "https://speakerdeck.com/some_user/talk_2026", "some_user", "talk_2026", false},
		{"digits", "https://speakerdeck.com/user1/deck2", "user1", "deck2", false},
		{"whitespace trimmed", "  https://speakerdeck.com/gopher/going-faster  ", "gopher", "going-faster", false},
		{"trailing slash", "https://speakerdeck.com/gopher/going-faster/", "", "", true},
		{"missing slug", "https://speakerdeck.com/gopher", "", "", true},
		{"extra segment", "https://speakerdeck.com/gopher/talk/extra", "", "", true},
		{"other host", "https://slideshare.net/gopher/talk", "", "", true},
		{"subdomain", "https://www.speakerdeck.com/gopher/talk", "", "", true},
		{"query string", "https://speakerdeck.com/gopher/talk?x=1", "", "", true},
		{"no scheme", "speakerdeck.com/gopher/talk", "", "", true},
		{"ftp scheme", "ftp://speakerdeck.com/gopher/talk", "", "", true},
		{"empty", "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseDeckURL(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDeckURL(%q) = %+v, want error", tt.input, ref)
				}
				if !errors.Is(err, ErrInvalidURL) {
					t.Errorf("ParseDeckURL(%q) error = %v, want ErrInvalidURL", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDeckURL(%q): %v", tt.input, err)
			}
			if ref.Owner != tt.wantOwner {
				t.Errorf("Owner = %q, want %q", ref.Owner, tt.wantOwner)
			}
			if ref.Slug != tt.wantSlug {
				t.Errorf("Slug = %q, want %q", ref.Slug, tt.wantSlug)
			}
		})
	}
}

func TestParseDeckURLErrorMessage(t *testing.T) {
	_, err := ParseDeckURL("https://example.com/not/a-deck")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "speakerdeck.com/<user>/<deck>") {
		t.Errorf("error = %q, should mention the expected URL shape", err.Error())
	}
}

func TestPageURL(t *testing.T) {
	ref := DeckRef{Owner: "gopher", Slug: "going-faster"}
	want := pageBaseURL + "/gopher/going-faster"
	if got := ref.PageURL(); got != want {
		t.Errorf("PageURL() = %q, want %q", got, want)
	}
}
