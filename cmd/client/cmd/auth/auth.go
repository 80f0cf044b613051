package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd groups the session commands
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sesión con el servidor",
	Long:  `Iniciar y cerrar sesión, y consultar el estado de la sesión actual.`,
}

func init() {
	AuthCmd.AddCommand(LoginCmd)
	AuthCmd.AddCommand(LogoutCmd)
	AuthCmd.AddCommand(StatusCmd)
}
