package document

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
)

var browsers = []string{"chromium", "chromium-browser", "google-chrome", "google-chrome-stable"}

type chromeRenderer struct {
	execPath string
	timeout  time.Duration
}

// NewPDFRenderer prints documents with a headless chromium. An empty chrome path is resolved
// from PATH on first use.
func NewPDFRenderer(conf config.Document) Renderer {
	timeout := time.Duration(conf.RenderTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &chromeRenderer{execPath: conf.ChromePath, timeout: timeout}
}

func (c *chromeRenderer) browser() (string, error) {
	if c.execPath != "" {
		return c.execPath, nil
	}
	for _, name := range browsers {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("none of %s found in PATH", strings.Join(browsers, ", "))
}

func (c *chromeRenderer) Render(ctx context.Context, doc *Document) (*Result, error) {
	html, err := HTML(doc)
	if err != nil {
		return nil, code.DocumentRenderErr.WithErr(err)
	}
	execPath, err := c.browser()
	if err != nil {
		logger.Errorf(ctx, "pdf render: %+v", err)
		return nil, code.DocumentRenderErr.WithErr(err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(execPath),
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(timeoutCtx, opts...)
	defer cancel()
	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var pdf []byte
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate("data:text/html;charset=utf-8,"+percentEncode(html)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 landscape, inches
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	); err != nil {
		logger.Errorf(ctx, "pdf render %s err: %+v", doc.Title, err)
		return nil, code.DocumentRenderErr.WithErr(err)
	}

	return &Result{Data: pdf, Filename: Filename(doc.Title), MimeType: MimePDF}, nil
}

// percentEncode escapes s for a data url, spaces become %20.
func percentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9',
			ch == '-', ch == '_', ch == '.', ch == '~':
			b.WriteByte(ch)
		default:
			fmt.Fprintf(&b, "%%%02X", ch)
		}
	}
	return b.String()
}
