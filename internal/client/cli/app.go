package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/ymxu/resumefill/internal/client/config"
	"github.com/ymxu/resumefill/internal/client/services"
	"github.com/ymxu/resumefill/internal/fields"
	"github.com/ymxu/resumefill/internal/fill"
	"github.com/ymxu/resumefill/internal/resume"
	"github.com/ymxu/resumefill/internal/store"
	"github.com/ymxu/resumefill/internal/transport"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Agent is the slice of the transport client the CLI commands use.
type Agent interface {
	FillForm(ctx context.Context, text string, fieldType fields.Type) error
	FillSpecificField(ctx context.Context, selector, text string) error
	DetectFields(ctx context.Context) ([]transport.Field, error)
	QuickFill(ctx context.Context, values map[fields.Type]string) (*fill.Report, error)
	OpenFixedWindow(ctx context.Context) error
	CloseFixedWindow(ctx context.Context) error
	CheckFixedWindow(ctx context.Context) (bool, error)
	OpenFloatWindow(ctx context.Context) error
	CloseFloatWindow(ctx context.Context) error
	Online(ctx context.Context) bool
}

type App struct {
	config      *config.Config
	resume      services.ResumeService
	apps        services.ApplicationService
	window      services.WindowService
	agent       Agent
	repos       *store.Repositories
	Mode        Mode
	reader      *bufio.Reader
	interactive bool

	// session state
	doc          *resume.Document
	selectedText string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	repos, err := store.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	return &App{
		config:      c,
		resume:      services.NewResumeService(repos.Settings),
		apps:        services.NewApplicationService(repos.Applications),
		window:      services.NewWindowService(repos.Settings),
		agent:       transport.NewClient(c.AgentEndpointAddr),
		repos:       repos,
		Mode:        ModeOffline,
		reader:      bufio.NewReader(os.Stdin),
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

// StartOnlineStatusWatcher probes the agent endpoint on a ticker and flips
// the mode accordingly. It exits when ctx is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			online := a.agent.Online(probeCtx)
			cancel()

			if online {
				a.setMode(ModeOnline)
			} else {
				a.setMode(ModeOffline)
			}

		case <-ctx.Done():
			return
		}
	}
}
