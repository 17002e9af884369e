package main

import (
	"fmt"

	"github.com/jonathan/message-polisher/internal/config"
	"github.com/jonathan/message-polisher/internal/server"
	"github.com/spf13/cobra"
)

var tokenClient string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for API access",
	Long:  `Generate a signed JWT for a named API client. Requires JWT_SECRET to be set; the server only checks tokens when it runs with the same secret.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenClient, "client", "cli", "Client name embedded in the token claims")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	token, err := server.NewJWTService(jwtCfg).GenerateToken(tokenClient)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	cmd.Println(token)
	return nil
}
