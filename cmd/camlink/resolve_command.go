package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"camlink/internal/identification"
	"camlink/internal/logging"
	"camlink/internal/rules"
)

type resolveOutput struct {
	Title           string `json:"title"`
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	Identity        string `json:"identity"`
	NormalizedTitle string `json:"normalized_title"`
	Solved          bool   `json:"solved"`
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var listBrands bool

	cmd := &cobra.Command{
		Use:   "resolve TITLE...",
		Short: "Show the brand and model resolved for page titles",
		Args: func(cmd *cobra.Command, args []string) error {
			if listBrands {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listBrands {
				return printBrands(cmd, jsonOutput)
			}
			resolver := identification.NewResolver(1, logging.NewNop())
			results := make([]resolveOutput, 0, len(args))
			for _, title := range args {
				record := resolver.ResolveTitle(title)
				results = append(results, resolveOutput{
					Title:           title,
					Brand:           record.Brand,
					Model:           record.Model,
					Identity:        record.Identity(),
					NormalizedTitle: record.NormalizedTitle,
					Solved:          record.Solved(),
				})
			}

			if jsonOutput {
				return writeJSON(cmd, results)
			}
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Title, dashIfEmpty(r.Brand), dashIfEmpty(r.Model), yesNo(r.Solved), r.NormalizedTitle})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Title", "Brand", "Model", "Solved", "Normalized"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	cmd.Flags().BoolVar(&listBrands, "brands", false, "List the brands the detector recognizes")
	return cmd
}

func printBrands(cmd *cobra.Command, jsonOutput bool) error {
	brands := rules.Brands()
	if jsonOutput {
		return writeJSON(cmd, brands)
	}
	out := cmd.OutOrStdout()
	for _, brand := range brands {
		fmt.Fprintln(out, brand)
	}
	return nil
}

func dashIfEmpty(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
