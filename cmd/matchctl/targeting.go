package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"career-match/internal/domain/job"
	"career-match/internal/domain/profile"
	"career-match/internal/domain/targeting"
	"career-match/internal/usecase"
)

func (c *cli) visibilityCmd() *cobra.Command {
	var jobFile, candidateFile string

	cmd := &cobra.Command{
		Use:   "visibility",
		Short: "Decide whether a job posting is shown to one candidate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var posting job.Posting
			if err := readJSONFile(jobFile, &posting); err != nil {
				return err
			}
			var candidate profile.Candidate
			if err := readJSONFile(candidateFile, &candidate); err != nil {
				return err
			}

			e, err := c.engines()
			if err != nil {
				return err
			}
			uc := usecase.NewTargetingUsecase(e.Targeting, nil, nil, nil, nil, usecase.TargetingConfig{Workers: 1}, c.logger)
			v, err := uc.DetermineVisibility(cmd.Context(), posting, candidate)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().StringVar(&jobFile, "job", "", "a JSON file with the job posting")
	cmd.Flags().StringVar(&candidateFile, "candidate", "", "a JSON file with the candidate")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("candidate")

	cmd.AddCommand(c.targetCmd())
	return cmd
}

type targetOutput struct {
	Candidates []targeting.Targeted `json:"candidates"`
	Stats      targeting.Stats      `json:"stats"`
}

// targetCmd runs batch targeting over a candidate file instead of the database.
func (c *cli) targetCmd() *cobra.Command {
	var jobFile, candidatesFile string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Rank every candidate in a file who should see the posting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var posting job.Posting
			if err := readJSONFile(jobFile, &posting); err != nil {
				return err
			}
			if err := posting.Validate(); err != nil {
				return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
			}
			var candidates []profile.Candidate
			if err := readJSONFile(candidatesFile, &candidates); err != nil {
				return err
			}

			e, err := c.engines()
			if err != nil {
				return err
			}
			targeted := e.Targeting.Target(posting, candidates)
			c.logger.Debug("targeting completed",
				zap.String("job", posting.Title),
				zap.Int("candidates", len(candidates)),
				zap.Int("reach", len(targeted)),
			)
			return printJSON(cmd.OutOrStdout(), targetOutput{Candidates: targeted, Stats: targeting.Summarize(targeted)})
		},
	}
	cmd.Flags().StringVar(&jobFile, "job", "", "a JSON file with the job posting")
	cmd.Flags().StringVar(&candidatesFile, "candidates", "", "a JSON file with an array of candidates")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("candidates")
	return cmd
}
