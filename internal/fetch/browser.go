package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// PageOptions defines parameters for a headless-Chromium page load.
type PageOptions struct {
	// URL to load.
	URL string

	// WaitSelector, when set, is a CSS selector the page must render
	// before extraction begins. When empty, only the settle delay applies.
	WaitSelector string

	// Settle is an extra delay after load for late JavaScript rendering.
	// Zero means one second.
	Settle time.Duration

	// ScrollToBottom scrolls the page in steps so lazily-loaded listings
	// are forced to render.
	ScrollToBottom bool

	// Timeout bounds the entire session. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Browser drives a headless Chromium instance for venues whose listings
// only exist after client-side rendering.
type Browser struct {
	allocOpts []chromedp.ExecAllocatorOption
}

// NewBrowser creates a Browser configured for unattended scraping.
func NewBrowser() *Browser {
	return &Browser{
		allocOpts: append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.UserAgent(UserAgent),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.NoSandbox,
		),
	}
}

// PageText loads a page and returns the rendered body's visible text. Used
// by adapters that scan listings line by line.
func (b *Browser) PageText(parentCtx context.Context, opts PageOptions) (string, error) {
	var text string
	err := b.run(parentCtx, opts, chromedp.Text("body", &text, chromedp.ByQuery))
	return text, err
}

// PageHTML loads a page and returns the rendered document HTML, suitable
// for goquery extraction.
func (b *Browser) PageHTML(parentCtx context.Context, opts PageOptions) (string, error) {
	var html string
	err := b.run(parentCtx, opts, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	return html, err
}

func (b *Browser) run(parentCtx context.Context, opts PageOptions, extract chromedp.Action) error {
	if opts.URL == "" {
		return fmt.Errorf("browser: URL is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Settle <= 0 {
		opts.Settle = time.Second
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(parentCtx, b.allocOpts...)
	defer allocCancel()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	tasks := chromedp.Tasks{chromedp.Navigate(opts.URL)}
	if opts.WaitSelector != "" {
		tasks = append(tasks, chromedp.WaitVisible(opts.WaitSelector, chromedp.ByQuery))
	}
	tasks = append(tasks, chromedp.Sleep(opts.Settle))
	if opts.ScrollToBottom {
		tasks = append(tasks, scrollToBottom(), chromedp.Sleep(opts.Settle))
	}
	tasks = append(tasks, extract)

	if err := chromedp.Run(ctx, tasks); err != nil {
		return fmt.Errorf("browser: loading %s: %w", opts.URL, err)
	}
	return nil
}

// scrollToBottom scrolls in fixed steps until the page height stops
// growing, so infinite-scroll listings finish loading.
func scrollToBottom() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		const maxSteps = 20
		var prev int64 = -1

		for i := 0; i < maxSteps; i++ {
			var height int64
			if err := chromedp.Evaluate(`document.body.scrollHeight`, &height).Do(ctx); err != nil {
				return err
			}
			if height == prev {
				return nil
			}
			prev = height

			if err := chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil).Do(ctx); err != nil {
				return err
			}
			if err := chromedp.Sleep(300 * time.Millisecond).Do(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
