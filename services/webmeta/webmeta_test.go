package webmeta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>Manipal University Jaipur - Online Degrees</title>
<meta name="description" content="UGC-entitled online MBA, MCA and BBA programs.">
<meta property="og:image" content="https://cdn.example.com/hero.jpg">
</head>
<body><h1>Welcome</h1></body>
</html>`

func TestFetchExtractsMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	meta, err := NewFetcher().Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if meta.Title != "Manipal University Jaipur - Online Degrees" {
		t.Errorf("title = %q", meta.Title)
	}
	if meta.Description != "UGC-entitled online MBA, MCA and BBA programs." {
		t.Errorf("description = %q", meta.Description)
	}
	if meta.ImageURL != "https://cdn.example.com/hero.jpg" {
		t.Errorf("image url = %q", meta.ImageURL)
	}
}

func TestFetchPrefersPlainTitleOverOG(t *testing.T) {
	page := `<html><head>
<title>Plain Title</title>
<meta property="og:title" content="OG Title">
</head><body></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	meta, err := NewFetcher().Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if meta.Title != "Plain Title" {
		t.Errorf("title = %q, want the document title", meta.Title)
	}
}

func TestFetchRejectsNonHTTPURL(t *testing.T) {
	if _, err := NewFetcher().Fetch(context.Background(), "ftp://example.com"); err == nil {
		t.Error("expected error for non-http url")
	}
}

func TestFetchRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewFetcher().Fetch(context.Background(), server.URL); err == nil {
		t.Error("expected error for 404 response")
	}
}
