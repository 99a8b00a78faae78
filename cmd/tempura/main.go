package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/tempura/internal/app"
	"github.com/hyperifyio/tempura/internal/recipe"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	command := strings.ToLower(os.Args[1])

	fs := flag.NewFlagSet("tempura "+command, flag.ExitOnError)
	var (
		configPath string
		outputPath string
		pdfPath    string
		userAgent  string
		timeout    time.Duration
		attempts   int
		verbose    bool
	)
	fs.StringVar(&configPath, "config", os.Getenv("TEMPURA_CONFIG"), "Path to YAML or JSON config file")
	fs.StringVar(&outputPath, "o", "", "Write Markdown to this file instead of stdout")
	fs.StringVar(&pdfPath, "pdf", "", "Also render the recipe to this PDF path")
	fs.StringVar(&userAgent, "ua", app.DefaultUserAgent, "User-Agent for page fetches")
	fs.DurationVar(&timeout, "timeout", app.DefaultTimeout, "Per-request HTTP timeout")
	fs.IntVar(&attempts, "attempts", app.DefaultMaxAttempts, "Fetch attempts including the first")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	_ = fs.Parse(os.Args[2:])

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		UserAgent:   userAgent,
		Timeout:     timeout,
		MaxAttempts: attempts,
		OutputPath:  outputPath,
		PDFPath:     pdfPath,
		Verbose:     verbose,
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}
	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid config")
		os.Exit(1)
	}

	switch command {
	case "scrape":
		if len(fs.Args()) != 1 {
			log.Error().Msg("usage: tempura scrape [flags] <url>")
			os.Exit(1)
		}
		if err := runScrape(cfg, fs.Args()[0]); err != nil {
			log.Error().Err(err).Msg("scrape failed")
			os.Exit(1)
		}
	case "convert":
		if len(fs.Args()) != 2 {
			log.Error().Msg("usage: tempura convert [flags] <metric|imperial> <json-array-of-strings>")
			os.Exit(1)
		}
		if err := runConvert(cfg, fs.Args()[0], fs.Args()[1]); err != nil {
			log.Error().Err(err).Msg("convert failed")
			os.Exit(1)
		}
	default:
		log.Error().Str("command", command).Msg("unknown command")
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  tempura scrape [flags] <url>")
	fmt.Fprintln(os.Stderr, "  tempura convert [flags] <metric|imperial> <json-array-of-strings>")
}

func runScrape(cfg app.Config, rawURL string) error {
	a := app.New(cfg)
	doc, err := a.Scrape(context.Background(), rawURL)
	if err != nil {
		return err
	}
	md := recipe.Markdown(doc, rawURL)
	if cfg.OutputPath != "" {
		if err := os.WriteFile(cfg.OutputPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Info().Str("out", cfg.OutputPath).Msg("wrote markdown")
	} else {
		fmt.Print(md)
	}
	if cfg.PDFPath != "" {
		if err := recipe.WritePDF(doc, rawURL, cfg.PDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", cfg.PDFPath).Msg("wrote pdf")
	}
	return nil
}

func runConvert(cfg app.Config, system string, rawJSON string) error {
	var lines []string
	if err := json.Unmarshal([]byte(rawJSON), &lines); err != nil {
		return fmt.Errorf("decode ingredient JSON: %w", err)
	}
	a := app.New(cfg)
	converted, err := a.Convert(lines, system)
	if err != nil {
		return err
	}
	out, err := json.Marshal(converted)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
