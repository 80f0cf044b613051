package storage

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"cobros/internal/app/server/config"
)

func TestOpen(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("sqlite", func(t *testing.T) {
		repos, err := Open(ctx, config.DB{Driver: config.DriverSQLite, SQLitePath: ":memory:"}, log)
		require.NoError(t, err)
		defer repos.Close()

		assert.NoError(t, repos.Ping(ctx))
		list, err := repos.Clientes.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Open(ctx, config.DB{Driver: "mysql"}, log)
		assert.ErrorContains(t, err, "mysql")
	})
}
