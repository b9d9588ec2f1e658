package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ymxu/resumefill/internal/client/services"
)

// panel controls the pinned assistant panel through the agent.
func (a *App) panel(ctx context.Context, args []string) {
	sub := "status"
	if len(args) > 0 {
		sub = args[0]
	}

	var err error
	switch sub {
	case "open":
		err = a.agent.OpenFixedWindow(ctx)
	case "close":
		err = a.agent.CloseFixedWindow(ctx)
	case "status":
		var isOpen bool
		isOpen, err = a.agent.CheckFixedWindow(ctx)
		if err == nil {
			if isOpen {
				printlnFn("Panel is open")
			} else {
				printlnFn("Panel is closed")
			}
		}
	default:
		printlnFn("Usage: panel [open|close|status]")
		return
	}

	if err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

// float controls the detached assistant window through the agent.
func (a *App) float(ctx context.Context, args []string) {
	sub := "open"
	if len(args) > 0 {
		sub = args[0]
	}

	var err error
	switch sub {
	case "open":
		err = a.agent.OpenFloatWindow(ctx)
	case "close":
		err = a.agent.CloseFloatWindow(ctx)
	default:
		printlnFn("Usage: float [open|close]")
		return
	}

	if err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

// resize updates the remembered panel geometry. Values outside the
// allowed range are clamped by the service.
func (a *App) resize(ctx context.Context) {
	current, err := a.window.Size(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	width, ok := a.askDimension("Width", current.Width)
	if !ok {
		return
	}
	height, ok := a.askDimension("Height", current.Height)
	if !ok {
		return
	}

	saved, err := a.window.SaveSize(ctx, services.WindowSize{Width: width, Height: height})
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Panel size is now %dx%d", saved.Width, saved.Height))
}

func (a *App) askDimension(label string, current int) (int, bool) {
	answer, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%d]", label, current), os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return 0, false
	}
	if answer == "" {
		return current, true
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		log.Printf("Error: not a number: %q", answer)
		return 0, false
	}
	return n, true
}
