package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdobler/custody"
	"github.com/vdobler/custody/report"
)

func crosstabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crosstab",
		Short: "Print one cross tabulation",
		Long: `Print the counts of an outcome per bin of a grouping dimension.

Examples:
  custody crosstab --input data.csv --by race --outcome manner
  custody crosstab --input data.csv --by age --outcome custody --where gender=Female`,
		RunE: runCrosstab,
	}
	cmd.Flags().String("by", "race", "Grouping dimension (race, age, gender)")
	cmd.Flags().String("outcome", "manner", "Outcome (manner, custody)")
	cmd.Flags().String("where", "", "Restrict to records with field=value (race and age take bin names)")
	return cmd
}

func runCrosstab(cmd *cobra.Command, _ []string) error {
	by, _ := cmd.Flags().GetString("by")
	outcomeName, _ := cmd.Flags().GetString("outcome")
	where, _ := cmd.Flags().GetString("where")

	dim, err := custody.LookupDimension(by)
	if err != nil {
		return err
	}
	outcome, err := custody.LookupOutcome(outcomeName)
	if err != nil {
		return err
	}

	ds, err := loadDataset()
	if err != nil {
		return err
	}
	if where != "" {
		field, value, ok := strings.Cut(where, "=")
		if !ok {
			return fmt.Errorf("--where wants field=value, got %q", where)
		}
		levels, err := ds.Levels(field)
		if err != nil {
			return err
		}
		if !levels.Contains(value) {
			return fmt.Errorf("no record has %s %q, values are %v", field, value, levels)
		}
		if ds, err = ds.Filter(field, value); err != nil {
			return err
		}
		slog.Debug("filtered data set", "field", field, "value", value, "records", ds.N)
	}

	m, err := mode()
	if err != nil {
		return err
	}
	t, err := custody.CrossTab(ds, dim.Spec(outcome, m))
	if err != nil {
		return err
	}
	return report.PrintTable(cmd.OutOrStdout(), t, dim.Bins, outcome.Categories)
}
