package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
)

// Float panel geometry, matching the detached assistant window.
const (
	floatWindowWidth  = 400
	floatWindowHeight = 500
)

// OpenFixedWindow opens the pinned assistant panel as a browser tab, or
// refocuses it when it is already open.
func (b *Browser) OpenFixedWindow(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.alive(b.fixedID) {
		id := b.fixedID
		return b.run(chromedp.ActionFunc(func(ctx context.Context) error {
			return target.ActivateTarget(id).Do(ctx)
		}))
	}
	b.fixedID = ""

	id, err := b.createTarget(target.CreateTarget(b.cfg.PanelURL))
	if err != nil {
		return fmt.Errorf("opening fixed panel: %w", err)
	}
	b.fixedID = id
	b.logger.Info(ctx, "fixed panel opened", "target", string(id))
	return nil
}

// CloseFixedWindow closes the pinned panel if it is open.
func (b *Browser) CloseFixedWindow(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.alive(b.fixedID) {
		b.fixedID = ""
		return nil
	}

	id := b.fixedID
	b.fixedID = ""
	return b.run(chromedp.ActionFunc(func(ctx context.Context) error {
		return target.CloseTarget(id).Do(ctx)
	}))
}

// CheckFixedWindow reports whether the pinned panel is still open. A
// panel the user closed by hand is forgotten here.
func (b *Browser) CheckFixedWindow(ctx context.Context) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fixedID == "" {
		return false, nil
	}
	if !b.alive(b.fixedID) {
		b.fixedID = ""
		return false, nil
	}
	return true, nil
}

// OpenFloatWindow opens the detached assistant panel in its own small
// window. An already open float panel is closed first, so at most one
// exists.
func (b *Browser) OpenFloatWindow(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.alive(b.floatID) {
		id := b.floatID
		b.floatID = ""
		_ = b.run(chromedp.ActionFunc(func(ctx context.Context) error {
			return target.CloseTarget(id).Do(ctx)
		}))
	}

	id, err := b.createTarget(target.CreateTarget(b.cfg.PanelURL).
		WithNewWindow(true).
		WithWidth(floatWindowWidth).
		WithHeight(floatWindowHeight))
	if err != nil {
		return fmt.Errorf("opening float panel: %w", err)
	}
	b.floatID = id
	b.logger.Info(ctx, "float panel opened", "target", string(id))
	return nil
}

// CloseFloatWindow closes the detached panel if it is open.
func (b *Browser) CloseFloatWindow(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.alive(b.floatID) {
		b.floatID = ""
		return nil
	}

	id := b.floatID
	b.floatID = ""
	return b.run(chromedp.ActionFunc(func(ctx context.Context) error {
		return target.CloseTarget(id).Do(ctx)
	}))
}

func (b *Browser) createTarget(params *target.CreateTargetParams) (target.ID, error) {
	var id target.ID
	err := b.run(chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		id, err = params.Do(ctx)
		return err
	}))
	return id, err
}
