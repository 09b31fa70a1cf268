package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"jobscrawler/pkg/logger"
)

var (
	global *Browser
	mu     sync.Mutex
)

// Browser is a singleton headless Chrome instance shared by all fetches.
// Each fetch runs in its own tab; the semaphore caps how many tabs are
// open at once.
type Browser struct {
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	semaphore     chan struct{} // limits concurrent tabs
	userAgent     string
	pageLoadDelay time.Duration
	tabTimeout    time.Duration
}

// Options configure the shared browser instance.
type Options struct {
	UserAgent     string
	PageLoadDelay time.Duration
	TabTimeout    time.Duration
	MaxTabs       int
}

// Init starts the shared browser. Must be called once at application startup.
func Init(ctx context.Context, opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return fmt.Errorf("browser already initialized")
	}
	if opts.MaxTabs < 1 {
		opts.MaxTabs = 4
	}
	if opts.TabTimeout <= 0 {
		opts.TabTimeout = 60 * time.Second
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, execAllocatorOptions(opts.UserAgent)...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return fmt.Errorf("start browser: %w", err)
	}

	global = &Browser{
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		semaphore:     make(chan struct{}, opts.MaxTabs),
		userAgent:     opts.UserAgent,
		pageLoadDelay: opts.PageLoadDelay,
		tabTimeout:    opts.TabTimeout,
	}

	logger.Log.Info().Int("max_tabs", opts.MaxTabs).Dur("page_load_delay", opts.PageLoadDelay).Msg("browser initialized")
	return nil
}

// Get returns the shared browser instance.
// Panics if the browser is not initialized.
func Get() *Browser {
	mu.Lock()
	defer mu.Unlock()

	if global == nil {
		panic("browser not initialized, call browser.Init() first")
	}
	return global
}

// IsInitialized returns true if the browser is initialized.
func IsInitialized() bool {
	mu.Lock()
	defer mu.Unlock()
	return global != nil
}

// Close shuts down the shared browser.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if global == nil {
		return
	}

	if global.browserCancel != nil {
		global.browserCancel()
	}
	if global.allocCancel != nil {
		global.allocCancel()
	}

	logger.Log.Info().Msg("browser closed")
	global = nil
}

// AcquireWithContext acquires a tab slot, respecting context cancellation.
func (b *Browser) AcquireWithContext(ctx context.Context) error {
	select {
	case b.semaphore <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release releases a tab slot.
func (b *Browser) Release() {
	<-b.semaphore
}
