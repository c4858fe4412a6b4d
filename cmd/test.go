package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knutern/folioctl/config"
	"github.com/knutern/folioctl/folio"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to FOLIO",
	Long:  `Log in to your FOLIO instance and report whether Okapi issued a session token.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	if err := config.ValidateConnection(cfg); err != nil {
		return fmt.Errorf("missing connection details in config: %w", err)
	}

	fmt.Printf("Testing connection to FOLIO at %s (tenant %s)...\n", cfg.Folio.URL, cfg.Folio.Tenant)

	client, err := folio.NewClient(cfg.Folio.URL, cfg.Folio.Tenant, logger)
	if err != nil {
		return fmt.Errorf("failed to create FOLIO client: %w", err)
	}

	ctx := context.Background()
	token, err := client.Login(ctx, cfg.Folio.Username, cfg.Folio.Password)
	if err != nil {
		return fmt.Errorf("failed to reach Okapi: %w", err)
	}

	if token == "" {
		return fmt.Errorf("reached Okapi but login was rejected: %w", folio.ErrNoToken)
	}

	fmt.Println("✓ Connection successful, token issued!")
	return nil
}
