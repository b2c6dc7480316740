// Package rod drives a real Chrome browser through the DevTools protocol,
// providing the live implementations of the page and element interfaces the
// scraping engine works against.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Browser owns a Chrome instance: either one it launched itself or an
// already-running one it attached to. Close must be called when the Browser
// is no longer needed; closing an attached browser only disconnects, it never
// kills the user's Chrome.
//
// Browser is safe for concurrent use.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   atomic.Bool
}

// BrowserOption configures a Browser launch.
type BrowserOption func(*browserConfig)

type browserConfig struct {
	headless bool
}

// WithHeadless controls whether the launched Chrome renders a window.
// Scraping a logged-in account usually needs a visible window so the user can
// authenticate first; defaults to headless.
func WithHeadless(headless bool) BrowserOption {
	return func(c *browserConfig) {
		c.headless = headless
	}
}

// NewBrowser launches a Chrome instance with stability flags and connects to
// it. Chrome is found on the host or downloaded by the launcher.
func NewBrowser(opts ...BrowserOption) (*Browser, error) {
	cfg := &browserConfig{headless: true}
	for _, opt := range opts {
		opt(cfg)
	}

	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(cfg.headless)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Browser{browser: browser, launcher: lnchr}, nil
}

// ConnectBrowser attaches to a Chrome already running with remote debugging
// enabled. This is how a scrape reuses the user's authenticated session:
// start Chrome with --remote-debugging-port, log in, then connect.
func ConnectBrowser(controlURL string) (*Browser, error) {
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser at %s: %w", controlURL, err)
	}
	return &Browser{browser: browser}, nil
}

// OpenPage navigates a new tab to url and waits for the load event. The
// returned page carries ctx for all subsequent operations.
func (b *Browser) OpenPage(ctx context.Context, url string) (*Page, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{URL: ""})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		page.Close()
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		page.Close()
		return nil, fmt.Errorf("waiting for %s to load: %w", url, err)
	}

	return &Page{page: page}, nil
}

// Close releases browser resources. Safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	err := b.browser.Close()
	if b.launcher != nil {
		b.launcher.Kill()
	}
	return err
}
