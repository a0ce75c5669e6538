package content

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractMissingContentDiv(t *testing.T) {
	htmlContent := `<html><body><div id="sidebar"><p>Nothing here</p></div></body></html>`

	_, _, err := Extract(htmlContent)
	if err == nil {
		t.Fatal("Expected error for HTML without div#content, got nil")
	}
	if !errors.Is(err, ErrNoContentDiv) {
		t.Fatalf("Expected ErrNoContentDiv, got: %v", err)
	}
}

func TestExtractPrefersMainElement(t *testing.T) {
	htmlContent := `<html><body>
<div id="content">
	<nav>Navigation junk</nav>
	<main>
		<h1>Ownership</h1>
		<p>Ownership in Rust is enforced at compile time.</p>
	</main>
	<footer>Footer junk</footer>
</div>
</body></html>`

	mainText, notes, err := Extract(htmlContent)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	expected := "Ownership\nOwnership in Rust is enforced at compile time."
	if mainText != expected {
		t.Errorf("Expected main text %q, got %q", expected, mainText)
	}
	if strings.Contains(mainText, "Navigation junk") || strings.Contains(mainText, "Footer junk") {
		t.Errorf("Main text leaked content from outside <main>: %q", mainText)
	}
	if notes != "" {
		t.Errorf("Expected empty speaker notes, got %q", notes)
	}
}

func TestExtractFallsBackToWholeContainer(t *testing.T) {
	htmlContent := `<html><body>
<div id="content">
	<h1>Borrowing</h1>
	<p>References let you use a value without taking ownership.</p>
</div>
</body></html>`

	mainText, _, err := Extract(htmlContent)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	expected := "Borrowing\nReferences let you use a value without taking ownership."
	if mainText != expected {
		t.Errorf("Expected main text %q, got %q", expected, mainText)
	}
}

func TestExtractSpeakerNotesWithoutSummaryLabel(t *testing.T) {
	htmlContent := `<html><body>
<div id="content">
	<main><p>Slide text.</p></main>
	<details>
		<summary>Speaker Notes</summary>
		<p>Mention the borrow checker here.</p>
		<p>Keep the example short.</p>
	</details>
</div>
</body></html>`

	_, notes, err := Extract(htmlContent)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if strings.Contains(notes, "Speaker Notes") {
		t.Errorf("Speaker notes must not contain the summary label, got %q", notes)
	}
	if !strings.Contains(notes, "Mention the borrow checker here.") {
		t.Errorf("Speaker notes missing note text, got %q", notes)
	}
	if !strings.Contains(notes, "Keep the example short.") {
		t.Errorf("Speaker notes missing second note, got %q", notes)
	}
}

func TestExtractSpeakerNotesLabelRepeatedInBody(t *testing.T) {
	htmlContent := `<html><body>
<div id="content">
	<main><p>Slide text.</p></main>
	<details>
		<summary>Speaker Notes</summary>
		<p>Speaker Notes recap: mention the borrow checker.</p>
	</details>
</div>
</body></html>`

	_, notes, err := Extract(htmlContent)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if strings.Contains(notes, "Speaker Notes") {
		t.Errorf("Speaker notes must not contain any occurrence of the summary label, got %q", notes)
	}
	if !strings.Contains(notes, "recap: mention the borrow checker.") {
		t.Errorf("Speaker notes missing note text, got %q", notes)
	}
}

func TestExtractDetailsWithoutSummary(t *testing.T) {
	htmlContent := `<html><body>
<div id="content">
	<main><p>Slide text.</p></main>
	<details><p>Raw notes only.</p></details>
</div>
</body></html>`

	_, notes, err := Extract(htmlContent)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if notes != "Raw notes only." {
		t.Errorf("Expected notes %q, got %q", "Raw notes only.", notes)
	}
}

func TestExtractSkipsScriptAndStyle(t *testing.T) {
	htmlContent := `<html><body>
<div id="content">
	<p>Visible text.</p>
	<script>var hidden = true;</script>
	<style>.hidden { display: none; }</style>
</div>
</body></html>`

	mainText, _, err := Extract(htmlContent)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if mainText != "Visible text." {
		t.Errorf("Expected only visible text, got %q", mainText)
	}
}

func TestExtractTitleFallbacks(t *testing.T) {
	htmlContent := `<html><head><title>Rust Course: Day 1</title></head><body><div id="content"><p>x</p></div></body></html>`

	title, err := ExtractTitle(htmlContent)
	if err != nil {
		t.Fatalf("Failed to extract title: %v", err)
	}
	if title != "Rust Course: Day 1" {
		t.Errorf("Expected title %q, got %q", "Rust Course: Day 1", title)
	}
}

func TestExtractGenericArticle(t *testing.T) {
	// Long paragraphs so readability treats the body as article content
	paragraph := strings.Repeat("Ownership rules keep Rust memory safe without a garbage collector. ", 30)
	htmlContent := `<html><head><title>Generic Post</title></head><body>
<article>
	<h1>Generic Post</h1>
	<p>` + paragraph + `</p>
	<p>` + paragraph + `</p>
</article>
</body></html>`

	text, err := ExtractGeneric(htmlContent)
	if err != nil {
		t.Fatalf("ExtractGeneric failed: %v", err)
	}
	if !strings.Contains(text, "Ownership rules keep Rust memory safe") {
		t.Errorf("Extracted text missing article body, got %q", text[:min(200, len(text))])
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
