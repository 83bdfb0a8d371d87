// Package usercmd provides summit-token commands for users
package usercmd

import (
	"context"
	"os"
	"time"

	"github.com/egeuysall/summit-token/helpers/tracelog"
	"github.com/egeuysall/summit-token/internal/cli/settings"
	"github.com/egeuysall/summit-token/internal/cli/termui"
	authapi "github.com/egeuysall/summit-token/pkg/api/auth/v1/client"
	"github.com/egeuysall/summit-token/pkg/api/auth/v1/models"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// TokenClient signs users in against the hosted auth service
type TokenClient struct {
	Settings *settings.Settings
	Log      logr.Logger
	ui       *termui.UI
	API      AuthAPI

	// ReadPassword reads a password from the terminal without echo
	ReadPassword func() ([]byte, error)
	// Now is the clock used to resolve relative token expiries
	Now func() time.Time
}

//counterfeiter:generate -header ../../../LICENSE_HEADER . AuthAPI
type AuthAPI interface {
	SignInWithPassword(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error)
}

// New loads the settings and returns a client talking to the configured auth service
func New() (*TokenClient, error) {
	cfg, err := settings.Load()
	if err != nil {
		return nil, errors.Wrap(err, "error loading settings")
	}

	return NewTokenClient(cfg, authapi.New(cfg))
}

func NewTokenClient(cfg *settings.Settings, apiClient AuthAPI) (*TokenClient, error) {
	ui := termui.NewUI()
	logger := tracelog.NewLogger().WithName("TokenClient").V(3)

	log := logger.WithName("NewTokenClient")
	log.Info("Auth API", "url", cfg.AuthURL)
	log.Info("Local API", "url", cfg.APIURL)

	return &TokenClient{
		Settings:     cfg,
		Log:          logger,
		ui:           ui,
		API:          apiClient,
		ReadPassword: readTerminalPassword,
		Now:          time.Now,
	}, nil
}

// UI returns the terminal UI of the client
func (c *TokenClient) UI() *termui.UI {
	return c.ui
}

func readTerminalPassword() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}
