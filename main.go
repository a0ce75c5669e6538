// Command coursecast converts a single course webpage into a narration
// script and an MP3 audio file, both written next to each other and named
// after the page URL.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"coursecast/pkg/coursecast"
	"coursecast/pkg/httpclient"
	"coursecast/pkg/openai"
	"coursecast/pkg/scriptgen"
	"coursecast/pkg/synthesizer"
)

func main() {
	var (
		url    = flag.String("url", "", "URL of the course page (required)")
		apiKey = flag.String("api-key", "", "OpenAI API key (falls back to the OPENAI_API_KEY environment variable)")
		model  = flag.String("model", scriptgen.DefaultModel, "Chat model used to generate the narration script")
		voice  = flag.String("voice", synthesizer.DefaultVoice, "TTS voice used for synthesis")
		outDir = flag.String("outdir", ".", "Directory the .txt and .mp3 files are written to")
	)
	flag.Parse()

	if *url == "" {
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
	service := coursecast.New(coursecast.Config{
		Client:      httpclient.NewClient(httpclient.BrowserClient),
		Generator:   scriptgen.NewOpenAIGenerator(client, *model),
		Synthesizer: synthesizer.NewOpenAISynthesizer(client, "", *voice),
		OutDir:      *outDir,
	})

	log.Printf("Starting course-to-TTS process for %s", *url)
	result, err := service.Process(context.Background(), *url)
	if err != nil {
		log.Fatalf("Course-to-TTS process failed: %v", err)
	}

	log.Printf("Course-to-TTS process completed successfully: %s, %s", result.ScriptPath, result.AudioPath)
}
