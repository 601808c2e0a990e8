// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"

	"github.com/spf13/cobra"
)

func newTransformCmd(rf *rootFlags) *cobra.Command {
	var samples int

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Print the mean or drawn samples of every uncertainified row",
		Long: `Uncertainify every CSV row and print, per row, either the object's mean
(--samples 0) or the requested number of samples drawn inside its bounds.

Output records start with the zero-based input row index.

Example: uncertainify transform --input data.csv --samples 3 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			objs, err := loadObjects(cmd, rf)
			if err != nil {
				return err
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			for idx, obj := range objs {
				if samples <= 0 {
					if err := writeRow(w, idx, obj.Mean()); err != nil {
						return err
					}
					continue
				}

				points, misses := obj.Samples(samples)
				if misses > 0 {
					log.Warningf("row %d: %d of %d draws exhausted the attempt budget", idx, misses, samples)
				}
				for _, p := range points {
					if err := writeRow(w, idx, p); err != nil {
						return err
					}
				}
			}
			w.Flush()

			return w.Error()
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 0, "samples per row; 0 prints the mean")

	return cmd
}
