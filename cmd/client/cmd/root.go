package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"cobros/cmd/client/cmd/abonos"
	"cobros/cmd/client/cmd/auth"
	"cobros/cmd/client/cmd/clientes"
	"cobros/cmd/client/cmd/compras"
	"cobros/cmd/client/cmd/types"
	"cobros/internal/app/client"
	"cobros/internal/app/client/config"
	"cobros/internal/utils/logger"
)

var (
	cfgFile    string
	debug      bool
	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "cobros",
	Short: "Cobros - clientes, compras y abonos",
	Long: `Cobros lleva el registro de clientes, sus compras a crédito y los
abonos con que las pagan, contra el servidor de cobros.

Cada cambio se envía al servidor y los listados se recargan desde él.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", describe(err))
		stop()
		os.Exit(1)
	}
}

// describe prefers the message the server sent over the raw request error.
func describe(err error) string {
	var te *client.TransportError
	if errors.As(err, &te) {
		switch {
		case te.Status == 0:
			return fmt.Sprintf("no se pudo contactar al servidor: %v", te.Err)
		case te.Status == 401:
			return "sesión no válida, ejecute: cobros auth login"
		case te.Message() != "":
			return te.Message()
		}
	}
	return err.Error()
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	level := "warn"
	if debug {
		level = "debug"
	}
	log := logger.New(cfg.Env, logger.WithWriter(os.Stderr), logger.WithLevel(level))
	log.Debug("configuration loaded", slog.String("server", cfg.BaseURL()))

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("inicializar aplicación: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, types.ClientAppKey, app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".cobros"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "archivo de configuración")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "mostrar registros de depuración")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "salida en formato JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "dirección del servidor de cobros")

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(clientes.ClientesCmd)
	rootCmd.AddCommand(compras.ComprasCmd)
	rootCmd.AddCommand(abonos.AbonosCmd)
}
