// Package feedservice turns a whole feed of course pages into narrated audio:
// it resolves page URLs from a local file, a sitemap, or an RSS feed, filters
// out root URLs and already-produced pages, and runs the pipeline over the
// rest with a worker pool.
package feedservice

import (
	"context"
	"fmt"
	"log"

	"coursecast/pkg/urls"
	"coursecast/pkg/worker"
)

// Service handles batch processing of course pages from feeds and sitemaps
type Service struct {
	manager     *worker.Manager
	urlFetchers []urls.URLsFetcher
	outDir      string
	pathFilter  string
}

// Config holds configuration for the service
type Config struct {
	Processor   worker.Processor
	WorkerCount int
	OutDir      string
	// PathFilter keeps only URLs containing this path segment; empty keeps all
	PathFilter string
}

// New creates a feed service
func New(cfg Config) *Service {
	// Sources are tried in order: local file, sitemap, then RSS
	fetchers := []urls.URLsFetcher{
		urls.NewFileParser(),
		urls.NewSitemapParser(),
		urls.NewRSSParser(),
	}

	return &Service{
		manager:     worker.NewManager(cfg.WorkerCount, cfg.Processor),
		urlFetchers: fetchers,
		outDir:      cfg.OutDir,
		pathFilter:  cfg.PathFilter,
	}
}

// ProcessFeed resolves course page URLs from the source (file path, sitemap
// URL, or feed URL), filters them, caps at maxEntries (<=0 means no limit),
// and processes the rest
func (s *Service) ProcessFeed(ctx context.Context, source string, maxEntries int) error {
	entries, err := s.resolveEntries(source)
	if err != nil {
		return err
	}

	candidates := make([]string, 0, len(entries))
	for _, entry := range entries {
		candidates = append(candidates, entry.Location)
	}

	filters := []urls.UrlFilter{
		urls.NewBaseURLFilter(),
		urls.NewAlreadyProcessedFilter(s.outDir),
	}
	if s.pathFilter != "" {
		filters = append(filters, urls.NewContainsPathFilter(s.pathFilter))
	}

	filtered, err := filterURLs(ctx, candidates, filters...)
	if err != nil {
		return fmt.Errorf("failed to filter URLs: %w", err)
	}

	if len(filtered) == 0 {
		return fmt.Errorf("no new URLs found after filtering")
	}

	if maxEntries > 0 && len(filtered) > maxEntries {
		filtered = filtered[:maxEntries]
	}

	log.Printf("Processing %d course pages from %s", len(filtered), source)
	if err := s.manager.ProcessURLs(ctx, filtered); err != nil {
		return fmt.Errorf("failed to process URLs: %w", err)
	}

	return nil
}

// resolveEntries tries each fetcher in order until one yields URLs
func (s *Service) resolveEntries(source string) ([]urls.URL, error) {
	var lastErr error
	for _, fetcher := range s.urlFetchers {
		entries, err := fetcher.Fetch(source)
		if err != nil {
			lastErr = err
			continue
		}
		if len(entries) > 0 {
			return entries, nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("all fetchers failed, last error: %w", lastErr)
	}
	return nil, fmt.Errorf("no URLs found in source %s", source)
}

// filterURLs applies all filters to a list of URLs
func filterURLs(ctx context.Context, candidates []string, filters ...urls.UrlFilter) ([]string, error) {
	filtered := make([]string, 0, len(candidates))

	for _, urlStr := range candidates {
		keep := true
		for _, f := range filters {
			shouldKeep, err := f.ShouldKeep(ctx, urlStr)
			if err != nil {
				return nil, fmt.Errorf("filter error for URL %s: %w", urlStr, err)
			}
			if !shouldKeep {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, urlStr)
		}
	}

	return filtered, nil
}
