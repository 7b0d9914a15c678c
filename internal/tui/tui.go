package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-customer-service/internal/adapter"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/models"
)

type TUI struct {
	adapter adapter.CustomerAdapter
	options []tea.ProgramOption
	logger  *logger.Logger
}

func New(a adapter.CustomerAdapter, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{adapter: a, options: options, logger: logger}
}

// LoginFlow shows the login form until the server accepts the credentials.
// The adapter keeps the access token for later requests.
func (t *TUI) LoginFlow(ctx context.Context) (models.AuthResponse, error) {
	finalModel, err := tea.NewProgram(newLoginModel(ctx, t.adapter), t.programOptions(ctx)...).Run()
	if err != nil {
		return models.AuthResponse{}, err
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return models.AuthResponse{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.done {
		return models.AuthResponse{}, ErrUserQuit
	}

	t.logger.Debug().Int64("id", result.resp.Customer.ID).Msg("logged in from tui")
	return result.resp, nil
}

// Browse runs the customer browser until the user quits.
func (t *TUI) Browse(ctx context.Context) error {
	_, err := tea.NewProgram(newBrowserModel(ctx, t.adapter), t.programOptions(ctx)...).Run()
	return err
}

func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	return append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
}
