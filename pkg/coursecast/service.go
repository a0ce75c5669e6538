// Package coursecast orchestrates the page-to-audio pipeline: fetch a course
// page, extract its content, generate a narration script, and synthesize it
// into an MP3.
package coursecast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"coursecast/pkg/content"
	"coursecast/pkg/domain"
	"coursecast/pkg/filename"
	"coursecast/pkg/httpclient"
	"coursecast/pkg/scriptgen"
	"coursecast/pkg/synthesizer"
)

// Service runs the three pipeline stages in sequence for one URL at a time
type Service struct {
	client    *httpclient.HTTPClient
	generator scriptgen.Generator
	synth     synthesizer.Synthesizer
	outDir    string

	// genericFallback switches pages without a course container to
	// readability extraction instead of failing. Feed mode sets this.
	genericFallback bool
}

// Config holds the dependencies and options for a Service
type Config struct {
	Client          *httpclient.HTTPClient
	Generator       scriptgen.Generator
	Synthesizer     synthesizer.Synthesizer
	OutDir          string
	GenericFallback bool
}

// New creates a Service. A nil Client gets a browser-profile client with the
// default fetch timeout; an empty OutDir means the current directory.
func New(cfg Config) *Service {
	client := cfg.Client
	if client == nil {
		client = httpclient.NewClient(httpclient.BrowserClient)
	}
	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "."
	}
	return &Service{
		client:          client,
		generator:       cfg.Generator,
		synth:           cfg.Synthesizer,
		outDir:          outDir,
		genericFallback: cfg.GenericFallback,
	}
}

// Result reports the files produced for one course page
type Result struct {
	BaseName   string
	ScriptPath string
	AudioPath  string
}

// Process runs the full pipeline for one URL: fetch, extract, generate the
// narration script, write <base>.txt, synthesize, write <base>.mp3. Any
// stage failure aborts; the script file is only written after the
// completion call succeeds.
func (s *Service) Process(ctx context.Context, url string) (*Result, error) {
	log.Printf("Fetching content from URL: %s", url)
	course, err := s.fetchCourse(ctx, url)
	if err != nil {
		return nil, err
	}
	log.Printf("Successfully extracted main content and speaker notes")

	log.Printf("Generating narration script...")
	script, err := s.generator.Generate(ctx, *course)
	if err != nil {
		return nil, fmt.Errorf("failed to generate script: %w", err)
	}
	log.Printf("Narration script generated successfully")

	base := filename.Base(url)
	scriptPath := filepath.Join(s.outDir, base+".txt")
	if err := os.WriteFile(scriptPath, []byte(script), 0644); err != nil {
		return nil, fmt.Errorf("failed to write script file: %w", err)
	}
	log.Printf("Narration script saved to: %s", scriptPath)

	audioPath := filepath.Join(s.outDir, base+".mp3")
	log.Printf("Synthesizing audio...")
	if err := s.synth.Synthesize(ctx, script, audioPath); err != nil {
		return nil, fmt.Errorf("failed to synthesize audio: %w", err)
	}
	log.Printf("Audio file saved to: %s", audioPath)

	return &Result{
		BaseName:   base,
		ScriptPath: scriptPath,
		AudioPath:  audioPath,
	}, nil
}

// fetchCourse fetches the page and extracts its course content
func (s *Service) fetchCourse(ctx context.Context, url string) (*domain.CourseContent, error) {
	htmlContent, err := s.fetchHTML(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %s: %w", url, err)
	}

	if title, err := content.ExtractTitle(htmlContent); err == nil {
		log.Printf("Page title: %s", title)
	}

	mainText, speakerNotes, err := content.Extract(htmlContent)
	if err != nil {
		if s.genericFallback && errors.Is(err, content.ErrNoContentDiv) {
			log.Printf("No course container in %s, falling back to readability extraction", url)
			mainText, err = content.ExtractGeneric(htmlContent)
			if err != nil {
				return nil, fmt.Errorf("generic extraction failed for %s: %w", url, err)
			}
			speakerNotes = ""
		} else {
			return nil, err
		}
	}

	return &domain.CourseContent{
		URL:          url,
		MainText:     mainText,
		SpeakerNotes: speakerNotes,
	}, nil
}

// fetchHTML fetches HTML content from a URL
func (s *Service) fetchHTML(ctx context.Context, url string) (string, error) {
	resp, err := s.client.GetContext(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
