package webmeta

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// SiteMetadata is what we can lift from an institution's public website
type SiteMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Fetcher pulls page metadata from institution websites so admins don't
// have to retype name and description when onboarding a partner.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a metadata fetcher
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch downloads the page at url and extracts title/description/og tags
func (f *Fetcher) Fetch(ctx context.Context, url string) (*SiteMetadata, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("url must be http or https")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "EduMitra-MetaBot/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	meta := &SiteMetadata{}
	extract(doc, meta)
	return meta, nil
}

// extract walks the parse tree collecting the first title and meta tags
func extract(n *html.Node, meta *SiteMetadata) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			if meta.Title == "" && n.FirstChild != nil {
				meta.Title = strings.TrimSpace(n.FirstChild.Data)
			}
		case "meta":
			name, property, content := "", "", ""
			for _, attr := range n.Attr {
				switch attr.Key {
				case "name":
					name = attr.Val
				case "property":
					property = attr.Val
				case "content":
					content = attr.Val
				}
			}
			if content == "" {
				break
			}
			switch {
			case name == "description" && meta.Description == "":
				meta.Description = strings.TrimSpace(content)
			case property == "og:description" && meta.Description == "":
				meta.Description = strings.TrimSpace(content)
			case property == "og:title" && meta.Title == "":
				meta.Title = strings.TrimSpace(content)
			case property == "og:image" && meta.ImageURL == "":
				meta.ImageURL = strings.TrimSpace(content)
			}
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		extract(child, meta)
	}
}
