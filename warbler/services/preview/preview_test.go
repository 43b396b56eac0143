package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestFindURL(t *testing.T) {
	if got := FindURL("check this out https://example.com/post and more"); got != "https://example.com/post" {
		t.Errorf("expected the url, got %q", got)
	}
	if got := FindURL("no links here"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestExtractOpenGraph(t *testing.T) {
	page := `<html><head>
		<title>Fallback Title</title>
		<meta property="og:title" content="OG Title">
		<meta property="og:description" content="A description.">
		<meta property="og:image" content="https://example.com/pic.png">
	</head><body></body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	card := extract(doc, "https://example.com")
	if card.Title != "OG Title" {
		t.Errorf("expected og:title to win, got %q", card.Title)
	}
	if card.Description != "A description." {
		t.Errorf("unexpected description %q", card.Description)
	}
	if card.ImageURL != "https://example.com/pic.png" {
		t.Errorf("unexpected image %q", card.ImageURL)
	}
}

func TestExtractTitleFallback(t *testing.T) {
	page := `<html><head><title> Plain Title </title></head><body></body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	card := extract(doc, "https://example.com")
	if card.Title != "Plain Title" {
		t.Errorf("expected trimmed <title> fallback, got %q", card.Title)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Served Page</title></head></html>`))
	}))
	defer srv.Close()

	card, err := NewFetcher().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if card.Title != "Served Page" {
		t.Errorf("unexpected title %q", card.Title)
	}
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := NewFetcher().Fetch(context.Background(), srv.URL); err == nil {
		t.Errorf("expected an error for a 404 page")
	}
}
