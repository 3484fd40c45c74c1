package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Hobotnika/gmaps-lead-scraper/internal/discover"
)

var (
	discoverName    string
	discoverAddress string
	discoverWebsite string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover contacts for a single lead",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("serper"); err != nil {
			return err
		}

		engine, err := newEngine()
		if err != nil {
			return err
		}

		lead := discover.Lead{
			BusinessName: discoverName,
			Address:      discoverAddress,
			Website:      discoverWebsite,
		}
		res, err := engine.Discover(ctx, lead)
		if err != nil {
			return eris.Wrap(err, "discover")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(buildLeadOutput(lead, res, nil))
	},
}

func init() {
	discoverCmd.Flags().StringVar(&discoverName, "name", "", "business name (required)")
	discoverCmd.Flags().StringVar(&discoverAddress, "address", "", "business address, folded into search queries")
	discoverCmd.Flags().StringVar(&discoverWebsite, "website", "", "business website, enables the page pass and email synthesis")
	_ = discoverCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(discoverCmd)
}
