package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

var errNoServer = errors.New("no server configured")

// CheckConnection checks that the server answers its health endpoint
func (a *App) CheckConnection(ctx context.Context) error {
	if a.httpClient == nil {
		return errNoServer
	}
	return a.httpClient.HealthCheck(ctx)
}

// Login exchanges credentials for a token and stores it
func (a *App) Login(ctx context.Context, userName, password string) (string, error) {
	if a.httpClient == nil {
		return "", errNoServer
	}

	token, err := a.httpClient.Login(ctx, userName, password)
	if err != nil {
		return "", err
	}

	if err := a.SaveToken(token); err != nil {
		return "", err
	}

	a.mu.Lock()
	a.authenticated = true
	a.mu.Unlock()

	a.log.Info("logged in", "user", userName)
	return token, nil
}

// Logout tells the server and forgets the local token either way
func (a *App) Logout(ctx context.Context) error {
	if a.httpClient != nil {
		if err := a.httpClient.Logout(ctx); err != nil {
			a.log.Warn("server logout failed", "error", err)
		}
	}
	return a.ClearToken()
}

// CheckAuth asks the server whether the stored token is still valid
func (a *App) CheckAuth(ctx context.Context) (bool, error) {
	if a.httpClient == nil {
		return false, errNoServer
	}

	ok, err := a.httpClient.CheckAuth(ctx)
	if err != nil {
		return false, err
	}

	a.mu.Lock()
	a.authenticated = ok
	a.mu.Unlock()

	return ok, nil
}

func (a *App) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// GetToken returns the stored token
func (a *App) GetToken() (string, error) {
	if a.config == nil {
		return "", ErrNotAuthenticated
	}

	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveToken persists the token and starts sending it
func (a *App) SaveToken(token string) error {
	if a.config == nil {
		return errNoServer
	}

	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	if a.httpClient != nil {
		a.httpClient.SetToken(token)
	}
	return nil
}

func (a *App) ClearToken() error {
	a.mu.Lock()
	a.authenticated = false
	a.mu.Unlock()

	if a.httpClient != nil {
		a.httpClient.SetToken("")
	}
	if a.config == nil {
		return nil
	}

	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
