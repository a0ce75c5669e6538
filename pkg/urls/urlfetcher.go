package urls

// URL represents a URL entry from a fetcher (file, sitemap or RSS)
type URL struct {
	Location string // URL of the course page
	Title    string // Title of the entry (optional, RSS only)
}

// URLsFetcher defines the interface for URL sources (file, sitemap, RSS, etc.)
type URLsFetcher interface {
	Fetch(source string) ([]URL, error)
}
