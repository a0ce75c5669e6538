package urls

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"coursecast/pkg/filename"
)

// UrlFilter defines the interface for URL filtering
type UrlFilter interface {
	ShouldKeep(ctx context.Context, url string) (bool, error)
}

// BaseURLFilter filters out base/root URLs
type BaseURLFilter struct{}

// NewBaseURLFilter creates a new base URL filter
func NewBaseURLFilter() *BaseURLFilter {
	return &BaseURLFilter{}
}

// ShouldKeep returns false if URL is a base/root URL
func (f *BaseURLFilter) ShouldKeep(ctx context.Context, urlStr string) (bool, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		// If we can't parse it, don't filter it out (let it fail later if needed)
		return true, nil
	}

	path := strings.Trim(parsed.Path, "/")
	return path != "", nil
}

// AlreadyProcessedFilter filters out URLs whose script file already exists in
// the output directory, so reruns skip finished pages
type AlreadyProcessedFilter struct {
	outDir string
}

// NewAlreadyProcessedFilter creates a filter checking the given output directory
func NewAlreadyProcessedFilter(outDir string) *AlreadyProcessedFilter {
	return &AlreadyProcessedFilter{outDir: outDir}
}

// ShouldKeep returns false if <base>.txt already exists for the URL
func (f *AlreadyProcessedFilter) ShouldKeep(ctx context.Context, urlStr string) (bool, error) {
	scriptPath := filepath.Join(f.outDir, filename.Base(urlStr)+".txt")
	if _, err := os.Stat(scriptPath); err == nil {
		return false, nil
	}
	return true, nil
}

// ContainsPathFilter filters URLs to only keep those that contain a specific path segment
type ContainsPathFilter struct {
	pathSegment string // The path segment to check for (e.g., "/courses")
}

// NewContainsPathFilter creates a new path filter that keeps URLs containing the specified path segment
func NewContainsPathFilter(pathSegment string) *ContainsPathFilter {
	return &ContainsPathFilter{
		pathSegment: pathSegment,
	}
}

// ShouldKeep returns true if URL contains the specified path segment
func (f *ContainsPathFilter) ShouldKeep(ctx context.Context, urlStr string) (bool, error) {
	return strings.Contains(urlStr, f.pathSegment), nil
}
