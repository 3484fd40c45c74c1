package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Hobotnika/gmaps-lead-scraper/internal/discover"
)

var (
	batchInput  string
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Discover contacts for a CSV of leads",
	Long:  "Reads leads from a CSV with a header row (columns: name, address, website), runs discovery sequentially, and writes one JSON object per lead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("serper"); err != nil {
			return err
		}

		f, err := os.Open(batchInput)
		if err != nil {
			return eris.Wrap(err, "open input")
		}
		defer f.Close()

		leads, err := readLeads(f)
		if err != nil {
			return err
		}
		if len(leads) == 0 {
			return eris.New("no leads in input")
		}

		engine, err := newEngine()
		if err != nil {
			return err
		}

		out := os.Stdout
		if batchOutput != "" {
			out, err = os.Create(batchOutput)
			if err != nil {
				return eris.Wrap(err, "create output")
			}
			defer out.Close()
		}

		zap.L().Info("starting batch discovery", zap.Int("leads", len(leads)))

		enc := json.NewEncoder(out)
		for _, lr := range engine.DiscoverAll(ctx, leads) {
			if err := enc.Encode(buildLeadOutput(lr.Lead, lr.Result, lr.Err)); err != nil {
				return eris.Wrap(err, "write output")
			}
		}
		return ctx.Err()
	},
}

// readLeads parses a lead CSV. The header row names the columns; name,
// address, and website are matched case-insensitively and extra columns are
// ignored. Rows without a business name are skipped.
func readLeads(r io.Reader) ([]discover.Lead, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, eris.Wrap(err, "read csv header")
	}

	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	nameIdx, ok := cols["name"]
	if !ok {
		if nameIdx, ok = cols["business_name"]; !ok {
			return nil, eris.New("csv header missing name column")
		}
	}

	field := func(row []string, key string) string {
		i, ok := cols[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var leads []discover.Lead
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "read csv row")
		}
		if nameIdx >= len(row) || strings.TrimSpace(row[nameIdx]) == "" {
			continue
		}
		leads = append(leads, discover.Lead{
			BusinessName: strings.TrimSpace(row[nameIdx]),
			Address:      field(row, "address"),
			Website:      field(row, "website"),
		})
	}
	return leads, nil
}

func init() {
	batchCmd.Flags().StringVar(&batchInput, "input", "", "CSV file of leads (required)")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "output file for JSON lines (default stdout)")
	_ = batchCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(batchCmd)
}
