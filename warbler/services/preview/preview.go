package preview

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Card is the link preview attached to a message whose text contains a
// URL: the page title plus OpenGraph description and image when present.
type Card struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// FindURL returns the first http(s) URL in the text, or "".
func FindURL(text string) string {
	return urlPattern.FindString(text)
}

type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Fetch retrieves the page and extracts a Card. Any failure returns an
// error; callers treat that as "no card", never as a failed post.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Card, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}
	card := extract(doc, pageURL)
	if card.Title == "" {
		return nil, fmt.Errorf("no title found at %s", pageURL)
	}
	return card, nil
}

func extract(doc *goquery.Document, pageURL string) *Card {
	card := &Card{URL: pageURL}

	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && v != "" {
		card.Title = strings.TrimSpace(v)
	} else {
		card.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if v, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		card.Description = strings.TrimSpace(v)
	} else if v, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		card.Description = strings.TrimSpace(v)
	}
	if v, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok {
		card.ImageURL = strings.TrimSpace(v)
	}
	return card
}
