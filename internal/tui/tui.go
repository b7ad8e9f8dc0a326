// Package tui implements the terminal inventory browser.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-inventory-keeper/internal/connectivity"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoGateway is returned by New without a gateway to browse.
var ErrNoGateway = errors.New("tui: no inventory gateway")

// TargetSource reports where requests currently go.
type TargetSource interface {
	Target() connectivity.Target
}

// PendingCounter reports the number of queued mutations.
type PendingCounter interface {
	Len() int
}

// Deps are the collaborators of the browser. Sync, Target and Pending are
// optional.
type Deps struct {
	Gateway   service.InventoryGateway
	Sync      service.SyncService
	Target    TargetSource
	Pending   PendingCounter
	BuildInfo models.AppBuildInfo
}

type TUI struct {
	deps   Deps
	logger *logger.Logger
}

func New(deps Deps, logger *logger.Logger) (*TUI, error) {
	if deps.Gateway == nil {
		return nil, ErrNoGateway
	}
	return &TUI{deps: deps, logger: logger}, nil
}

// Run shows the browser until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithComponent("tui").WithContext(ctx)

	model := newBrowserModel(ctx, t.deps, clipboard.WriteAll)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
