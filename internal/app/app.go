package app

import (
	"context"
	"log"
	"sync"

	"gioui.org/x/explorer"

	"github.com/ndalink/ndasign/internal/config"
	"github.com/ndalink/ndasign/internal/portal"
	"github.com/ndalink/ndasign/internal/session"
	"github.com/ndalink/ndasign/internal/storage"
	"github.com/ndalink/ndasign/internal/update"
	"github.com/ndalink/ndasign/internal/version"
)

// Version is the build version shown on the about screen and compared
// against the latest published release.
const Version = "0.1.0"

type Screen int

const (
	ScreenOpenLink Screen = iota
	ScreenPortal
	ScreenAudit
	ScreenAbout
)

// App aggregates the services and cross-screen state. Fields are written
// from the UI event loop; background goroutines go through the session
// controller or set the update fields under the mutex.
type App struct {
	mu            sync.Mutex
	CurrentScreen Screen

	Config      *config.Config
	Portal      *portal.Client
	AuditLogger *storage.AuditLogger
	Explorer    *explorer.Explorer

	// Controller drives the currently open signing session, nil until a
	// link is opened.
	Controller *session.Controller

	LinkStatus string
	Invalidate func()

	updateURL string
}

func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := storage.NewAuditLogger(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	return &App{
		CurrentScreen: ScreenOpenLink,
		Config:        cfg,
		Portal:        portal.NewClient(cfg.ServerURL),
		AuditLogger:   logger,
	}, nil
}

// OpenLink starts a signing session from a pasted link or bare token. Any
// previous session is torn down first; its pending requests are abandoned.
func (a *App) OpenLink(link string) {
	token, err := portal.TokenFromLink(link)
	if err != nil {
		a.LinkStatus = "Invalid link: " + err.Error()
		return
	}

	if a.Controller != nil {
		a.Controller.Close()
	}
	a.Controller = session.New(a.Portal, a.AuditLogger, token, a.Invalidate)
	a.Controller.Load()
	a.LinkStatus = ""
	a.CurrentScreen = ScreenPortal
}

// CheckForUpdate compares the build version against the newest release and
// records the release page URL when the build is behind.
func (a *App) CheckForUpdate(ctx context.Context) {
	go func() {
		tag, url, err := update.FetchLatestRelease(ctx)
		if err != nil {
			log.Printf("DEBUG: update check failed: %v", err)
			return
		}
		if !version.IsOutdated(Version, tag) {
			return
		}
		a.mu.Lock()
		a.updateURL = url
		a.mu.Unlock()
		if a.Invalidate != nil {
			a.Invalidate()
		}
	}()
}

// UpdateURL returns the release page of a newer version, or "" when the
// build is current (or the check has not finished).
func (a *App) UpdateURL() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.updateURL
}
