package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cobros/cmd/client/cmd/types"
)

var userName string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Iniciar sesión",
	Long: `Autenticarse en el servidor de cobros.

El token se guarda localmente y se usa en las siguientes operaciones.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if userName == "" {
			fmt.Fprint(out, "Usuario: ")
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("leer usuario: %w", err)
			}
			userName = strings.TrimSpace(line)
		}

		fmt.Fprint(out, "Contraseña: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("leer contraseña: %w", err)
		}
		fmt.Fprintln(out)

		if _, err := app.Login(cmd.Context(), userName, string(password)); err != nil {
			return fmt.Errorf("no se pudo iniciar sesión: %w", err)
		}

		fmt.Fprintln(out, "✓ Sesión iniciada")
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&userName, "user", "u", "", "nombre de usuario")
}
