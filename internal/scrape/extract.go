package scrape

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Patterns for locating the presentation ID and slide indices in page
// markup. Slide images live on the CDN under
// presentations/<hex id>/slide_<n>.jpg, with a preview_ variant for
// thumbnails.
var (
	slideImagePattern       = regexp.MustCompile(`presentations/([a-f0-9]+)/(?:preview_)?slide_(\d+)\.jpg`)
	presentationPathPattern = regexp.MustCompile(`presentations/([a-f0-9]+)/`)
	presentationCDNPattern  = regexp.MustCompile(`files\.speakerdeck\.com/presentations/([a-f0-9]+)/`)
	slideCountPattern       = regexp.MustCompile(`(?i)(\d+)\s*slides?`)
)

// defaultTitle is used when the page carries no og:title metadata.
const defaultTitle = "presentation"

// ExtractResult holds what Extract could read from a presentation page.
// ID is empty when no presentation identifier was found. Count is 0 when
// the markup does not reveal the slide count, in which case the caller
// falls back to probing the CDN.
type ExtractResult struct {
	Title string
	ID    string
	Count int
}

// Extract reads the deck title, presentation ID, and slide count out of
// presentation page HTML. It is a pure function of the page text.
//
// The title comes from the og:title meta tag. The ID and count come from
// slide <img> tags when present; otherwise the ID falls back to the
// JSON-LD thumbnailUrl and then to a raw scan of the page text, and the
// count falls back to a "N slides" phrase in the page's visible text.
func Extract(page string) ExtractResult {
	scan := &pageScan{maxIndex: -1}
	if doc, err := html.Parse(strings.NewReader(page)); err == nil {
		scan.walk(doc)
	}

	res := ExtractResult{Title: scan.title, ID: scan.id, Count: scan.maxIndex + 1}
	if res.Title == "" {
		res.Title = defaultTitle
	}
	if res.ID == "" {
		res.ID = idFromJSONLD(scan.jsonLD)
	}
	if res.ID == "" {
		if m := presentationCDNPattern.FindStringSubmatch(page); m != nil {
			res.ID = m[1]
		}
	}
	if res.Count == 0 {
		if m := slideCountPattern.FindStringSubmatch(scan.text.String()); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				res.Count = n
			}
		}
	}
	return res
}

// pageScan accumulates everything a single pass over the parsed HTML tree
// yields: the og:title, the first presentation ID seen in a slide img,
// the highest slide index, raw JSON-LD blocks, and the visible text.
type pageScan struct {
	title    string
	id       string
	maxIndex int
	jsonLD   []string
	text     strings.Builder
}

func (s *pageScan) walk(n *html.Node) {
	switch n.Type {
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Meta:
			if s.title == "" && attrVal(n, "property") == "og:title" {
				s.title = attrVal(n, "content")
			}
		case atom.Img:
			if m := slideImagePattern.FindStringSubmatch(attrVal(n, "src")); m != nil {
				if s.id == "" {
					s.id = m[1]
				}
				if i, err := strconv.Atoi(m[2]); err == nil && i > s.maxIndex {
					s.maxIndex = i
				}
			}
		case atom.Script:
			if attrVal(n, "type") == "application/ld+json" && n.FirstChild != nil {
				s.jsonLD = append(s.jsonLD, n.FirstChild.Data)
			}
			return
		case atom.Style:
			// Style text is not visible text.
			return
		}
	case html.TextNode:
		s.text.WriteString(n.Data)
		s.text.WriteByte(' ')
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s.walk(c)
	}
}

// attrVal returns the value of the named attribute, or "" when absent.
func attrVal(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// jsonLDSchema is the subset of the page's JSON-LD block we read.
type jsonLDSchema struct {
	ThumbnailURL string `json:"thumbnailUrl"`
}

// idFromJSONLD extracts the presentation ID from the first JSON-LD block
// whose thumbnailUrl points into the presentations CDN path.
func idFromJSONLD(blocks []string) string {
	for _, block := range blocks {
		var schema jsonLDSchema
		if err := json.Unmarshal([]byte(block), &schema); err != nil {
			continue
		}
		if m := presentationPathPattern.FindStringSubmatch(schema.ThumbnailURL); m != nil {
			return m[1]
		}
	}
	return ""
}

// slideURL returns the canonical CDN URL for slide n of a presentation.
func slideURL(id string, n int) string {
	return fmt.Sprintf("%s/presentations/%s/slide_%d.jpg", fileBaseURL, id, n)
}

// SlideURLs builds the ordered slide image URLs for a presentation.
// Index i of the result is slide i.
func SlideURLs(id string, count int) []string {
	urls := make([]string, count)
	for i := range urls {
		urls[i] = slideURL(id, i)
	}
	return urls
}
