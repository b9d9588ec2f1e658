// Package browser drives a real Chrome instance over the DevTools
// protocol. It implements dom.Page against live page targets and manages
// the assistant panel windows.
package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/dom"
	"github.com/ymxu/resumefill/internal/logging"
)

// Config selects the Chrome binary and profile the agent drives.
type Config struct {
	ChromePath  string
	UserDataDir string
	Headless    bool

	// PanelURL is the page shown inside the assistant panels.
	PanelURL string
}

// Browser owns one running Chrome and hands out pages and panel windows.
type Browser struct {
	cfg    Config
	logger logging.Logger

	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc

	mu      sync.Mutex
	fixedID target.ID
	floatID target.ID
}

// New launches Chrome. The returned Browser must be closed.
func New(ctx context.Context, cfg Config, logger logging.Logger) (*Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
	)
	if cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromePath))
	}
	if cfg.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(cfg.UserDataDir))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancel := chromedp.NewContext(allocCtx)

	// Run with no actions starts the process.
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("starting chrome: %w", err)
	}

	logger.Info(ctx, "chrome started", "headless", cfg.Headless)
	return &Browser{
		cfg:         cfg,
		logger:      logger,
		ctx:         browserCtx,
		cancel:      cancel,
		allocCancel: allocCancel,
	}, nil
}

// Close tears the browser down.
func (b *Browser) Close() error {
	b.cancel()
	b.allocCancel()
	return nil
}

// ActivePage attaches to the page the user is working in: the first open
// page target that is not one of our own panels. The returned release
// func detaches from the target without closing it.
func (b *Browser) ActivePage(ctx context.Context) (dom.Page, func(), error) {
	info, err := b.findUserPage()
	if err != nil {
		return nil, nil, err
	}

	tabCtx, cancel := chromedp.NewContext(b.ctx, chromedp.WithTargetID(info.TargetID))
	return &page{ctx: tabCtx}, cancel, nil
}

func (b *Browser) findUserPage() (*target.Info, error) {
	infos, err := chromedp.Targets(b.ctx)
	if err != nil {
		return nil, fmt.Errorf("listing targets: %w", err)
	}

	b.mu.Lock()
	fixed, float := b.fixedID, b.floatID
	b.mu.Unlock()

	for _, info := range infos {
		if info.Type != "page" {
			continue
		}
		if info.TargetID == fixed || info.TargetID == float {
			continue
		}
		if strings.HasPrefix(info.URL, "devtools://") || strings.HasPrefix(info.URL, "chrome://") {
			continue
		}
		return info, nil
	}
	return nil, fmt.Errorf("no open page to act on: %w", common.ErrNotFound)
}

// alive reports whether a previously created target still exists.
func (b *Browser) alive(id target.ID) bool {
	if id == "" {
		return false
	}
	infos, err := chromedp.Targets(b.ctx)
	if err != nil {
		return false
	}
	for _, info := range infos {
		if info.TargetID == id {
			return true
		}
	}
	return false
}

// run executes a raw CDP command against the browser session.
func (b *Browser) run(action chromedp.Action) error {
	return chromedp.Run(b.ctx, action)
}
