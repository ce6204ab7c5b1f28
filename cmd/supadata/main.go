// Command supadata is a small demo CLI for the SDK: scrape a page, map a
// site, or fetch a transcript or metadata for a URL, printing the result as
// JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	supadata "github.com/supadata-ai/supadata-go"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	op := flag.String("op", "scrape", "Operation: scrape, map, transcript, metadata")
	target := flag.String("url", "", "URL to operate on")
	lang := flag.String("lang", "", "Preferred transcript language")
	text := flag.Bool("text", false, "Return transcript as plain text")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *target == "" {
		fmt.Fprintln(os.Stderr, "Usage: supadata -op <scrape|map|transcript|metadata> -url <url>")
		os.Exit(2)
	}
	apiKey := os.Getenv("SUPADATA_API_KEY")
	if apiKey == "" {
		slog.Error("SUPADATA_API_KEY is not set")
		os.Exit(1)
	}

	client := supadata.New(apiKey)
	ctx := context.Background()

	var result any
	var err error
	switch *op {
	case "scrape":
		result, err = client.Web.Scrape(ctx, *target)
	case "map":
		result, err = client.Web.Map(ctx, *target)
	case "transcript":
		result, err = client.Transcript(ctx, supadata.TranscriptParams{
			URL:  *target,
			Lang: *lang,
			Text: *text,
		})
	case "metadata":
		result, err = client.Metadata(ctx, *target)
	default:
		slog.Error("unknown operation", slog.String("op", *op))
		os.Exit(2)
	}
	if err != nil {
		slog.Error("operation failed", slog.String("op", *op), slog.Any("error", err))
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		slog.Error("encode result", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(string(out))
}
