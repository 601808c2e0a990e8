// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/uncertain/uncertain"
)

// dimSummary holds sample statistics for one coordinate.
type dimSummary struct {
	Dim    int
	Count  int
	Mean   float64
	StdDev float64
}

// summarize draws n samples from every object and aggregates them per
// dimension. Objects of lower dimensionality simply do not contribute to
// the higher dimensions.
func summarize(objs []*uncertain.Object, n int) ([]dimSummary, int, error) {
	var (
		perDim [][]float64
		misses int
	)
	for _, obj := range objs {
		points, m := obj.Samples(n)
		misses += m
		for len(perDim) < obj.Dimensionality() {
			perDim = append(perDim, nil)
		}
		for _, p := range points {
			for d, v := range p {
				perDim[d] = append(perDim[d], v)
			}
		}
	}

	out := make([]dimSummary, len(perDim))
	for d, values := range perDim {
		out[d] = dimSummary{Dim: d, Count: len(values)}
		if len(values) == 0 {
			continue
		}
		data := stats.Float64Data(values)
		mean, err := stats.Mean(data)
		if err != nil {
			return nil, 0, fmt.Errorf("dimension %d: %w", d, err)
		}
		sd, err := stats.StandardDeviation(data)
		if err != nil {
			return nil, 0, fmt.Errorf("dimension %d: %w", d, err)
		}
		out[d].Mean, out[d].StdDev = mean, sd
	}

	return out, misses, nil
}

func newSummaryCmd(rf *rootFlags) *cobra.Command {
	var samples int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print per-dimension statistics of samples drawn from every row",
		Long: `Uncertainify every CSV row, draw --samples points from each object and
print per-dimension count, mean and standard deviation of all drawn points,
followed by the number of exhausted draws.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if samples < 1 {
				return fmt.Errorf("--samples must be ≥ 1, got %d", samples)
			}
			objs, err := loadObjects(cmd, rf)
			if err != nil {
				return err
			}
			dims, misses, err := summarize(objs, samples)
			if err != nil {
				return err
			}
			if misses > 0 {
				log.Warningf("%d draws exhausted the attempt budget", misses)
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			_ = w.Write([]string{"dim", "count", "mean", "stddev"})
			for _, s := range dims {
				_ = w.Write([]string{
					strconv.Itoa(s.Dim),
					strconv.Itoa(s.Count),
					strconv.FormatFloat(s.Mean, 'g', 6, 64),
					strconv.FormatFloat(s.StdDev, 'g', 6, 64),
				})
			}
			// Padded to the header width so the output stays rectangular.
			_ = w.Write([]string{"misses", strconv.Itoa(misses), "", ""})
			w.Flush()

			return w.Error()
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 1000, "samples drawn per row")

	return cmd
}
