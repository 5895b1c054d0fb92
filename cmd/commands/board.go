package commands

import (
	"fmt"

	"pageant-scoring-system/internal/console"
	"pageant-scoring-system/internal/global/httpclient"
	"pageant-scoring-system/internal/scoring"

	"github.com/spf13/cobra"
)

func BoardCmd() *cobra.Command {
	var (
		url       string
		segmentID uint
		gender    string
	)
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the overall leaderboard, or a segment leaderboard with --segment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := scoring.ParseGender(gender)
			if err != nil {
				return err
			}
			client := httpclient.New(url)
			out := cmd.OutOrStdout()

			if segmentID != 0 {
				board, err := client.SegmentBoard(cmd.Context(), segmentID, g)
				if err != nil {
					return fmt.Errorf("failed to load segment leaderboard: %w", err)
				}
				console.RenderSegment(out, board)
				return nil
			}

			board, err := client.OverallBoard(cmd.Context(), g)
			if err != nil {
				return fmt.Errorf("failed to load overall leaderboard: %w", err)
			}
			console.RenderOverall(out, board)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", defaultAPIURL, "API base URL including prefix")
	cmd.Flags().UintVar(&segmentID, "segment", 0, "segment id; empty for the overall leaderboard")
	cmd.Flags().StringVar(&gender, "gender", "", "male or female for the pair contest; empty for solo")
	return cmd
}
