package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/knutern/folioctl/config"
	"github.com/knutern/folioctl/folio"
)

// recordsCmd represents the records command
var recordsCmd = &cobra.Command{
	Use:   "records [url username password tenant] <hrid>",
	Short: "Resolve an HRID to its item record IDs",
	Long: `Resolve a FOLIO HRID to the item record IDs attached to it, one group
of IDs per holding.

Connection details come from the config file:

  folioctl records in00000001234

or entirely from positional arguments:

  folioctl records https://folio.example.com diku_admin secret diku in00000001234

The fully-positional form echoes every request as a curl command; pass
--show-requests=false to silence it.`,
	Args: recordsArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the groups as JSON")
	recordsCmd.Flags().BoolVar(&showRequests, "show-requests", false, "echo a curl equivalent for every request")
}

// recordsArgs accepts either a lone HRID or the full positional form
func recordsArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 && len(args) != 5 {
		return fmt.Errorf("accepts <hrid> or <url> <username> <password> <tenant> <hrid>, received %d argument(s)", len(args))
	}
	return nil
}

// resolveShowRequests decides whether the request echo is enabled. The flag
// wins, then the config; the fully-positional form echoes by default, as the
// original argv-only interface always did.
func resolveShowRequests(fullForm, flagChanged, flagValue, cfgValue bool) bool {
	if flagChanged {
		return flagValue
	}
	return cfgValue || fullForm
}

func runRecords(cmd *cobra.Command, args []string) error {
	hrid := args[len(args)-1]
	if len(args) == 5 {
		cfg.Folio.URL = args[0]
		cfg.Folio.Username = args[1]
		cfg.Folio.Password = args[2]
		cfg.Folio.Tenant = args[3]
	}

	if err := config.ValidateConnection(cfg); err != nil {
		return fmt.Errorf("missing connection details (pass them as arguments or set them in the config file): %w", err)
	}

	if cmd.Flags().Changed("json") {
		cfg.Output.JSON = jsonOutput
	}
	cfg.Output.ShowRequests = resolveShowRequests(
		len(args) == 5,
		cmd.Flags().Changed("show-requests"), showRequests,
		cfg.Output.ShowRequests,
	)

	var opts []folio.Option
	if cfg.Output.ShowRequests {
		opts = append(opts, folio.WithRequestEcho(os.Stdout))
	}

	client, err := folio.NewClient(cfg.Folio.URL, cfg.Folio.Tenant, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create FOLIO client: %w", err)
	}

	ops := folio.NewOperations(client, logger)

	logger.Info().Str("hrid", hrid).Msg("Resolving records")

	ctx := context.Background()
	groups, err := ops.GetRecords(ctx, cfg.Folio.Username, cfg.Folio.Password, hrid)
	if err != nil {
		return err
	}

	// Display results
	if cfg.Output.JSON {
		return json.NewEncoder(os.Stdout).Encode(groups)
	}

	if len(groups) == 0 {
		fmt.Printf("No item records found for HRID %s.\n", hrid)
		return nil
	}

	holdingText := "holding"
	if len(groups) != 1 {
		holdingText = "holdings"
	}
	fmt.Printf("\nFound %d %s:\n", len(groups), holdingText)
	fmt.Println(strings.Repeat("-", 80))

	for i, group := range groups {
		fmt.Printf("Holding %d: %d item(s)\n", i+1, len(group))
		for _, id := range group {
			fmt.Printf("  • %s\n", id)
		}
	}

	return nil
}
