package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"career-match/internal/domain/profile"
	"career-match/internal/domain/progression"
	"career-match/internal/usecase"
)

func (c *cli) progressionCmd() *cobra.Command {
	var candidateFile, asOf string

	cmd := &cobra.Command{
		Use:   "progression",
		Short: "Analyze a candidate's academic progression and job readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var candidate profile.Candidate
			if err := readJSONFile(candidateFile, &candidate); err != nil {
				return err
			}

			e, err := c.engines()
			if err != nil {
				return err
			}
			tracker := e.Tracker
			if asOf != "" {
				day, err := time.Parse(time.DateOnly, asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of %q: %w", asOf, err)
				}
				tracker = progression.NewTracker(e.Resolver, progression.WithClock(func() time.Time { return day }))
			}

			uc := usecase.NewProgressionUsecase(tracker, nil, nil, 0, c.logger)
			a, err := uc.Analyze(cmd.Context(), candidate)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), a)
		},
	}
	cmd.Flags().StringVar(&candidateFile, "candidate", "", "a JSON file with the candidate")
	cmd.Flags().StringVar(&asOf, "as-of", "", "the date (YYYY-MM-DD) undated records are placed at (default today)")
	_ = cmd.MarkFlagRequired("candidate")
	return cmd
}
