package types

import (
	"errors"

	"github.com/spf13/cobra"

	"cobros/internal/app/client"
)

type contextKey string

// ClientAppKey is where the root command stores the *client.App in the command context.
const ClientAppKey contextKey = "app"

// App returns the application created by the root command.
func App(cmd *cobra.Command) (*client.App, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("aplicación no inicializada")
	}
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, errors.New("aplicación no inicializada")
	}
	return app, nil
}
