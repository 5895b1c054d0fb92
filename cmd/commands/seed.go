package commands

import (
	"fmt"

	"pageant-scoring-system/internal/console"
	"pageant-scoring-system/internal/global/httpclient"
	"pageant-scoring-system/internal/global/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func SeedCmd() *cobra.Command {
	var (
		file        string
		url         string
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load judges, candidates, segments, scores and weights from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := console.LoadFixture(file)
			if err != nil {
				return err
			}

			seeder := console.NewSeeder(httpclient.New(url), logger.New("Seed"), concurrency)
			sum, err := seeder.Run(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}

			color.Green("Seeded %d judges, %d candidates, %d pair candidates", sum.Judges, sum.Candidates, sum.PairCandidates)
			color.Green("Seeded %d segments, %d pair segments, %d score sheets, %d weights", sum.Segments, sum.PairSegments, sum.Sheets, sum.Weights)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "contest.yaml", "fixture file")
	cmd.Flags().StringVar(&url, "url", defaultAPIURL, "API base URL including prefix")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "judges submitted in parallel")
	return cmd
}
