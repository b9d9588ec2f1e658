package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ymxu/resumefill/internal/repositories/settings"
)

// Window size limits mirror the resizable panel: anything outside is
// clamped on save.
const (
	MinPanelWidth  = 380
	MaxPanelWidth  = 820
	MinPanelHeight = 420
	MaxPanelHeight = 820

	DefaultPanelWidth  = 460
	DefaultPanelHeight = 520
)

// WindowSize is the remembered assistant-panel geometry.
type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// WindowService remembers the assistant panel size across sessions.
type WindowService interface {
	Size(ctx context.Context) (WindowSize, error)
	SaveSize(ctx context.Context, size WindowSize) (WindowSize, error)
}

type windowService struct {
	settings settings.Repository
}

func NewWindowService(repo settings.Repository) WindowService {
	return &windowService{settings: repo}
}

func (s *windowService) Size(ctx context.Context) (WindowSize, error) {
	fallback := WindowSize{Width: DefaultPanelWidth, Height: DefaultPanelHeight}

	raw, err := s.settings.Get(ctx, settings.KeyWindowSize)
	if err != nil {
		return fallback, fmt.Errorf("loading window size: %w", err)
	}
	if raw == nil {
		return fallback, nil
	}

	var size WindowSize
	if err := json.Unmarshal(raw, &size); err != nil || size.Width == 0 || size.Height == 0 {
		return fallback, nil
	}
	return clamp(size), nil
}

func (s *windowService) SaveSize(ctx context.Context, size WindowSize) (WindowSize, error) {
	size = clamp(size)
	raw, err := json.Marshal(size)
	if err != nil {
		return size, err
	}
	if err := s.settings.Set(ctx, settings.KeyWindowSize, raw); err != nil {
		return size, fmt.Errorf("saving window size: %w", err)
	}
	return size, nil
}

func clamp(size WindowSize) WindowSize {
	if size.Width < MinPanelWidth {
		size.Width = MinPanelWidth
	}
	if size.Width > MaxPanelWidth {
		size.Width = MaxPanelWidth
	}
	if size.Height < MinPanelHeight {
		size.Height = MinPanelHeight
	}
	if size.Height > MaxPanelHeight {
		size.Height = MaxPanelHeight
	}
	return size
}
