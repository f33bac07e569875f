package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdobler/custody"
)

func binCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bin",
		Short: "Show the bin of raw race and age values",
		Long: `Show how raw values are binned, or list the bins and mappings.

Examples:
  custody bin --race Korean --age 45
  custody bin --list`,
		RunE: runBin,
	}
	cmd.Flags().StringSlice("race", nil, "Raw race labels")
	cmd.Flags().StringSlice("age", nil, "Raw age values")
	cmd.Flags().Bool("list", false, "List all bins")
	return cmd
}

func runBin(cmd *cobra.Command, _ []string) error {
	races, _ := cmd.Flags().GetStringSlice("race")
	ages, _ := cmd.Flags().GetStringSlice("age")
	list, _ := cmd.Flags().GetBool("list")
	w := cmd.OutOrStdout()

	if list {
		fmt.Fprintf(w, "race bins:   %q\n", custody.RaceBins)
		fmt.Fprintf(w, "age bins:    %q\n", custody.AgeBins)
		fmt.Fprintf(w, "gender bins: %q\n", custody.GenderBins)
		fmt.Fprintf(w, "%s: %q\n", custody.AsianOceanic, custody.AsianOceanicLabels())
	}
	for _, r := range races {
		fmt.Fprintf(w, "race %q -> %q\n", r, custody.BinRace(r))
	}
	var errs []error
	for _, a := range ages {
		bin, err := custody.BinAge(a)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(w, "age %q -> %q\n", a, bin)
	}
	return errors.Join(errs...)
}
