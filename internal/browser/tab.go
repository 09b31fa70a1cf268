package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"jobscrawler/pkg/logger"
)

// FetchResult is the outcome of fetching one URL.
type FetchResult struct {
	HTML       string
	FinalURL   string
	StatusCode int
}

// FetchPage renders url in a fresh tab and returns the post-JavaScript HTML.
// The tab's cache is disabled so every call sees the live page.
func (b *Browser) FetchPage(ctx context.Context, url string) (*FetchResult, error) {
	log := logger.Log

	if err := b.AcquireWithContext(ctx); err != nil {
		return nil, fmt.Errorf("acquire browser slot: %w", err)
	}
	defer b.Release()

	tabCtx, tabCancel := chromedp.NewContext(b.browserCtx)
	defer tabCancel()

	timeoutCtx, timeoutCancel := context.WithTimeout(tabCtx, b.tabTimeout)
	defer timeoutCancel()

	var html string
	var finalURL string
	var statusCode int

	tasks := chromedp.Tasks{
		// Capture the document response status before navigation starts.
		chromedp.ActionFunc(func(ctx context.Context) error {
			chromedp.ListenTarget(ctx, func(ev interface{}) {
				if resp, ok := ev.(*network.EventResponseReceived); ok {
					if resp.Type == network.ResourceTypeDocument {
						statusCode = int(resp.Response.Status)
					}
				}
			})
			return nil
		}),
		// Set User-Agent via emulation API (more reliable than command-line flag)
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetUserAgentOverride(b.userAgent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			return network.SetCacheDisabled(true).Do(ctx)
		}),
		// Skip static assets the extractor never looks at.
		chromedp.ActionFunc(func(ctx context.Context) error {
			return network.SetBlockedURLS([]string{
				"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp", "*.svg", "*.ico",
				"*.mp4", "*.webm",
				"*.woff", "*.woff2", "*.ttf", "*.eot", "*.otf",
			}).Do(ctx)
		}),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(b.pageLoadDelay),
		chromedp.Location(&finalURL),
		chromedp.OuterHTML("html", &html),
	}

	if err := chromedp.Run(timeoutCtx, tasks); err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	if statusCode == 0 {
		statusCode = 200
	}

	log.Debug().
		Str("url", url).
		Str("final_url", finalURL).
		Int("status", statusCode).
		Int("html_len", len(html)).
		Msg("page fetched")

	return &FetchResult{
		HTML:       html,
		FinalURL:   finalURL,
		StatusCode: statusCode,
	}, nil
}
