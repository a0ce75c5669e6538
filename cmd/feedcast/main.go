// Command feedcast batch-converts course pages into narrated audio. The
// source can be a local file of URLs, a sitemap URL, or an RSS/Atom feed;
// pages that already have a script file in the output directory are skipped.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"coursecast/pkg/coursecast"
	"coursecast/pkg/feedservice"
	"coursecast/pkg/httpclient"
	"coursecast/pkg/openai"
	"coursecast/pkg/scriptgen"
	"coursecast/pkg/synthesizer"
)

func main() {
	var (
		source     = flag.String("source", "", "URL file path, sitemap URL, or RSS feed URL (required)")
		apiKey     = flag.String("api-key", "", "OpenAI API key (falls back to the OPENAI_API_KEY environment variable)")
		max        = flag.Int("max", 20, "Max course pages to process (<=0 means no limit)")
		workers    = flag.Int("workers", 2, "Number of parallel workers")
		model      = flag.String("model", scriptgen.DefaultModel, "Chat model used to generate narration scripts")
		voice      = flag.String("voice", synthesizer.DefaultVoice, "TTS voice used for synthesis")
		outDir     = flag.String("outdir", ".", "Directory the .txt and .mp3 files are written to")
		pathFilter = flag.String("contains", "", "Only process URLs containing this path segment")
	)
	flag.Parse()

	if *source == "" {
		flag.Usage()
		os.Exit(1)
	}

	key := *apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		log.Fatal("OpenAI API key is required. Provide it via -api-key or the OPENAI_API_KEY environment variable.")
	}

	client := openai.NewClient(key)
	pipeline := coursecast.New(coursecast.Config{
		Client:      httpclient.NewClient(httpclient.BrowserClient),
		Generator:   scriptgen.NewOpenAIGenerator(client, *model),
		Synthesizer: synthesizer.NewOpenAISynthesizer(client, "", *voice),
		OutDir:      *outDir,
		// Feed entries are often plain articles without a course container
		GenericFallback: true,
	})

	service := feedservice.New(feedservice.Config{
		Processor:   pipeline,
		WorkerCount: *workers,
		OutDir:      *outDir,
		PathFilter:  *pathFilter,
	})

	start := time.Now()
	log.Printf("Processing course pages from source: %s (max=%d)", *source, *max)
	if err := service.ProcessFeed(context.Background(), *source, *max); err != nil {
		log.Fatalf("Feed processing failed: %v", err)
	}
	log.Printf("Done. Duration: %s", time.Since(start))
}
