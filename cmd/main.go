package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"jobscrawler/internal/api"
	"jobscrawler/internal/browser"
	"jobscrawler/internal/config"
	"jobscrawler/internal/extractor"
	"jobscrawler/internal/jobs"
	"jobscrawler/internal/output"
	"jobscrawler/pkg/logger"
)

var (
	flagQuery     string
	flagOutput    string
	flagNoBrowser bool
	flagTimeout   time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jobscrawler",
		Short: "Scrape Google Careers job listings into JSON",
		Long: `jobscrawler fetches one Google Careers search results page through a
headless browser, extracts the listings with a CSS selector schema,
prints them and writes them to a JSON file.`,
		Run: runScrape,
	}
	rootCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "job search query (overrides JOB_QUERY)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (overrides OUTPUT_FILE)")
	rootCmd.Flags().BoolVar(&flagNoBrowser, "no-browser", false, "fetch over plain HTTP without JavaScript rendering")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "per-fetch timeout (overrides TAB_TIMEOUT)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the extraction HTTP service",
		Run:   runServe,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runScrape runs the whole pipeline once: build URL, fetch, extract,
// normalize, print, write. Every failure is logged and ends the run
// normally; nothing is retried and no partial file is written.
func runScrape(cmd *cobra.Command, args []string) {
	cfg := config.Load()
	logger.Init(logger.IsDev())
	log := logger.Log

	if flagQuery != "" {
		cfg.Query = flagQuery
	}
	if flagOutput != "" {
		cfg.OutputFile = flagOutput
	}
	if flagTimeout > 0 {
		cfg.TabTimeout = flagTimeout
	}

	log.Info().Str("query", cfg.Query).Msg("starting job search")

	// Compile up front so a broken schema is reported as a configuration
	// problem rather than an empty page.
	cs, err := jobs.Schema().Compile()
	if err != nil {
		log.Error().Err(err).Msg("extraction schema is misconfigured")
		return
	}

	targetURL := jobs.SearchURL(cfg.Query)
	log.Info().Str("url", targetURL).Msg("initializing crawler")

	ctx := context.Background()

	var result *browser.FetchResult
	if flagNoBrowser {
		fetchCtx, cancel := context.WithTimeout(ctx, cfg.TabTimeout)
		defer cancel()
		result, err = browser.FetchPageHTTP(fetchCtx, targetURL, cfg.UserAgent)
	} else {
		if err := browser.Init(ctx, browser.Options{
			UserAgent:     cfg.UserAgent,
			PageLoadDelay: cfg.PageLoadDelay,
			TabTimeout:    cfg.TabTimeout,
			MaxTabs:       cfg.MaxBrowserTabs,
		}); err != nil {
			log.Error().Err(err).Msg("failed to initialize browser")
			return
		}
		defer browser.Close()

		log.Info().Msg("crawling in progress, this might take a moment")
		result, err = browser.Get().FetchPage(ctx, targetURL)
	}
	if err != nil {
		log.Error().Err(err).Str("url", targetURL).Msg("crawl failed")
		return
	}
	log.Info().Int("status", result.StatusCode).Msg("crawling complete")

	records, err := extractor.ExtractHTML(result.HTML, cs)
	if err != nil {
		// Engine failure, not a layout change: show what was fetched.
		log.Error().Err(err).Msg("extraction failed, raw page preview follows")
		fmt.Println(preview(result.HTML, 2000))
		return
	}

	if len(records) == 0 {
		ev := log.Warn().Int("status", result.StatusCode).Int("html_len", len(result.HTML))
		if diag := browser.Diagnose(result.HTML, result.StatusCode); diag.Blocked {
			ev = ev.Str("diagnosis", diag.Reason)
		}
		ev.Msg("no listings extracted; the site layout may have changed or no jobs matched")
		return
	}

	listings := jobs.FromRecords(records)

	fmt.Printf("\n--- Extracted Job Listings for %q ---\n", cfg.Query)
	if err := output.Dump(os.Stdout, listings); err != nil {
		log.Error().Err(err).Msg("failed to print listings")
		return
	}
	fmt.Println("\n----------------------------------------------------")

	if err := output.WriteJSON(cfg.OutputFile, listings); err != nil {
		log.Error().Err(err).Str("file", cfg.OutputFile).Msg("failed to write output file")
		return
	}

	log.Info().Int("listings", len(listings)).Str("file", cfg.OutputFile).Msg("job search finished")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := config.Load()
	logger.Init(logger.IsDev())
	log := logger.Log

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             10 * 1024 * 1024,
	})
	api.SetupRoutes(app)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down")
		_ = app.Shutdown()
	}()

	addr := ":" + cfg.HTTPPort
	log.Info().Str("addr", addr).Msg("extraction service starting")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("HTTP server error")
	}
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
