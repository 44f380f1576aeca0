package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"career-match/internal/domain/equivalence"
	"career-match/internal/usecase"
)

func (c *cli) equivalentsCmd() *cobra.Command {
	var institution string

	cmd := &cobra.Command{
		Use:   "equivalents <course name>",
		Short: "List equivalent courses at every other institution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := c.equivalence()
			if err != nil {
				return err
			}
			res, err := uc.FindEquivalents(cmd.Context(), usecase.CourseQuery{CourseName: args[0], Institution: institution})
			if err != nil {
				return err
			}
			c.logger.Debug("equivalents resolved", zap.String("course", args[0]), zap.Int("found", res.TotalFound))
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&institution, "institution", "i", "", "the institution the course was taken at")
	return cmd
}

func (c *cli) similarityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "similarity <family> <family>",
		Short: "Print the similarity between two skill families",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := c.equivalence()
			if err != nil {
				return err
			}
			res, err := uc.Similarity(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func (c *cli) requirementCmd() *cobra.Command {
	var (
		student       equivalence.StudentCourse
		required      equivalence.CourseRequirement
		minSimilarity float64
	)

	cmd := &cobra.Command{
		Use:   "requirement",
		Short: "Check whether a completed course satisfies a required course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := c.equivalence()
			if err != nil {
				return err
			}
			res, err := uc.CheckRequirementMatch(cmd.Context(), student, required, minSimilarity)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}

	f := cmd.Flags()
	f.StringVar(&student.Name, "course", "", "the completed course")
	f.StringVar(&student.Institution, "institution", "", "the institution of the completed course")
	f.Float64Var(&student.Grade, "grade", 0, "the grade obtained (30-point scale)")
	f.StringVar(&required.CourseName, "required", "", "the required course")
	f.StringVar(&required.Institution, "required-institution", "", "the institution of the required course")
	f.Float64Var(&required.MinGrade, "min-grade", 0, "the minimum grade (default 18)")
	f.Float64Var(&minSimilarity, "min-similarity", 0, "the minimum family similarity (default 0.8)")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("required")
	return cmd
}

func (c *cli) rolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the job role profiles used for readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := c.equivalence()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), uc.Roles(cmd.Context()))
		},
	}
}
