package urls

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"coursecast/pkg/httpclient"
)

// SitemapParser handles sitemap parsing operations
type SitemapParser struct {
	client *httpclient.HTTPClient
}

// NewSitemapParser creates a new sitemap parser
func NewSitemapParser() *SitemapParser {
	return &SitemapParser{
		client: httpclient.NewClient(httpclient.CloudflareClient),
	}
}

// Fetch fetches and parses a sitemap from the given URL. Sitemap indexes are
// followed one level deep, combining the entries of every referenced sitemap;
// an index nested inside another index is skipped.
func (p *SitemapParser) Fetch(url string) ([]URL, error) {
	return p.fetch(url, 0)
}

func (p *SitemapParser) fetch(url string, depth int) ([]URL, error) {
	resp, err := p.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sitemap: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// Read first few bytes to detect sitemap type
	peekBuffer := make([]byte, 512)
	n, err := resp.Body.Read(peekBuffer)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read sitemap: %w", err)
	}

	head := string(peekBuffer[:n])
	reader := io.MultiReader(strings.NewReader(head), resp.Body)

	if strings.Contains(head, "sitemapindex") {
		if depth >= 1 {
			return nil, fmt.Errorf("nested sitemap index not supported: %s", url)
		}

		sitemapURLs, err := p.parseSitemapIndex(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to parse sitemap index: %w", err)
		}

		var allURLs []URL
		for _, sitemapURL := range sitemapURLs {
			entries, err := p.fetch(sitemapURL, depth+1)
			if err != nil {
				// Skip broken sitemaps, combine the rest
				continue
			}
			allURLs = append(allURLs, entries...)
		}

		if len(allURLs) == 0 {
			return nil, fmt.Errorf("no entries found in any sitemap from index")
		}

		return allURLs, nil
	}

	return p.parseSitemap(reader)
}

// parseSitemapIndex parses a sitemap index file
func (p *SitemapParser) parseSitemapIndex(reader io.Reader) ([]string, error) {
	var index sitemapIndex
	if err := xml.NewDecoder(reader).Decode(&index); err != nil {
		return nil, fmt.Errorf("failed to decode sitemap index XML: %w", err)
	}

	urls := make([]string, 0, len(index.Sitemaps))
	for _, ref := range index.Sitemaps {
		if ref.Location != "" {
			urls = append(urls, ref.Location)
		}
	}

	return urls, nil
}

// parseSitemap parses a regular sitemap XML
func (p *SitemapParser) parseSitemap(reader io.Reader) ([]URL, error) {
	var set urlSet
	if err := xml.NewDecoder(reader).Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode sitemap XML: %w", err)
	}

	urls := make([]URL, 0, len(set.URLs))
	for _, entry := range set.URLs {
		if entry.Location != "" {
			// Title not available in sitemaps, leave empty
			urls = append(urls, URL{Location: entry.Location})
		}
	}

	if len(urls) == 0 {
		return nil, fmt.Errorf("sitemap contained no URLs")
	}

	return urls, nil
}

// XML structures for parsing sitemap XML

// urlSet represents a regular sitemap structure
type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	URLs    []urlEntry `xml:"url"`
}

// urlEntry represents a single URL entry in XML
type urlEntry struct {
	Location string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
}

// sitemapIndex represents a sitemap index structure
type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Sitemaps []sitemapRef `xml:"sitemap"`
}

// sitemapRef represents a reference to another sitemap in an index
type sitemapRef struct {
	Location string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
}
