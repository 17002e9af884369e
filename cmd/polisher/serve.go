package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/message-polisher/internal/config"
	"github.com/jonathan/message-polisher/internal/phrasebank"
	"github.com/jonathan/message-polisher/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigPath string
	serveBanksPath  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the polish, buzzwordify, reply-suggestions
and phrases endpoints. Optional protections are enabled through the
environment: PROXY_SECRET requires the shared header on every content
request, and JWT_SECRET additionally requires a bearer token (mint one with
the token command).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by flags and env)")
	serveCmd.Flags().StringVar(&serveBanksPath, "banks", "", "Path to a phrase bank override file (defaults to BANKS_PATH env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	serverCfg, err := buildServeConfig()
	if err != nil {
		return err
	}

	srv, err := server.New(serverCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// buildServeConfig resolves the effective server configuration from the
// config file, the environment, and flags, in increasing precedence.
func buildServeConfig() (server.Config, error) {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return server.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return server.Config{}, err
		}
		cfg = *loaded
	}

	// Environment and flags override the config file.
	overrides := config.Config{
		Port:        servePort,
		ProxySecret: os.Getenv("PROXY_SECRET"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		BanksPath:   serveBanksPath,
	}
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return server.Config{}, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		overrides.JWTExpirationHours = hours
	}
	if overrides.BanksPath == "" {
		overrides.BanksPath = os.Getenv("BANKS_PATH")
	}
	cfg = overrides.MergeWithDefaults(cfg)
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	banks := phrasebank.Defaults()
	if cfg.BanksPath != "" {
		loaded, err := phrasebank.Load(cfg.BanksPath)
		if err != nil {
			return server.Config{}, fmt.Errorf("failed to load phrase banks: %w", err)
		}
		banks = loaded
	}

	serverCfg := server.Config{
		Port:        cfg.Port,
		ProxySecret: cfg.ProxySecret,
		Banks:       banks,
	}
	if cfg.JWTSecret != "" {
		jwtCfg, err := config.JWTConfigFrom(cfg.JWTSecret, cfg.JWTExpirationHours)
		if err != nil {
			return server.Config{}, fmt.Errorf("failed to create JWT config: %w", err)
		}
		serverCfg.JWTConfig = jwtCfg
	}
	return serverCfg, nil
}
