package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// ErrNoContentDiv is returned when the page has no <div id="content"> container
var ErrNoContentDiv = errors.New("invalid HTML content: missing <div id=\"content\">")

// Extract pulls the course text out of an HTML document.
// The main text comes from a <main> element nested inside <div id="content">,
// falling back to the whole container when no <main> is present. Speaker notes
// come from a <details> element inside the container, with the <summary> label
// text removed; notes are empty when no <details> exists.
func Extract(htmlContent string) (mainText, speakerNotes string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	contentDiv := doc.Find("div#content").First()
	if contentDiv.Length() == 0 {
		return "", "", ErrNoContentDiv
	}

	mainTag := contentDiv.Find("main").First()
	if mainTag.Length() > 0 {
		mainText = FlattenText(mainTag)
	} else {
		mainText = FlattenText(contentDiv)
	}

	detailsTag := contentDiv.Find("details").First()
	if detailsTag.Length() > 0 {
		notesText := FlattenText(detailsTag)
		summaryTag := detailsTag.Find("summary").First()
		if summaryTag.Length() > 0 {
			summaryText := FlattenText(summaryTag)
			notesText = strings.ReplaceAll(notesText, summaryText, "")
		}
		speakerNotes = strings.TrimSpace(notesText)
	}

	return mainText, speakerNotes, nil
}

// ExtractGeneric extracts the main article text from arbitrary HTML using
// readability. Used by feed mode for pages that carry no course container.
func ExtractGeneric(htmlContent string) (string, error) {
	article, err := readability.FromReader(strings.NewReader(htmlContent), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", fmt.Errorf("no readable text found in HTML")
	}

	return text, nil
}

// ExtractTitle extracts the page title with fallback mechanisms
func ExtractTitle(htmlContent string) (string, error) {
	// Try readability first
	article, err := readability.FromReader(strings.NewReader(htmlContent), nil)
	if err == nil {
		if title := strings.TrimSpace(article.Title); title != "" {
			return title, nil
		}
	}

	// Fallback: parse HTML directly with goquery
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Try <title> tag
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title, nil
	}

	// Try <h1> tag (often the main heading)
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		return title, nil
	}

	// Try meta property="og:title"
	if title, exists := doc.Find("meta[property='og:title']").Attr("content"); exists && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title), nil
	}

	return "", fmt.Errorf("title not found in HTML")
}

// FlattenText collects every descendant text node of the selection, trims
// each, drops empties, and joins the rest with newlines. Script and style
// bodies are skipped.
func FlattenText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
