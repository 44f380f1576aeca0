package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"career-match/internal/app"
	"career-match/internal/config"
	"career-match/internal/logger"
	"career-match/internal/usecase"
)

const appName = "matchctl"

// Actual version can be specified in build command.
var version = "unknown"

// cli carries the state shared by every subcommand.
type cli struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:           appName,
		Short:         "matchctl runs the career matching engines against local JSON and YAML files",
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			l, err := logger.New(c.v.GetBool("json"), c.v.GetBool("debug"))
			if err != nil {
				return fmt.Errorf("creating a logger: %w", err)
			}
			c.logger = l
			return nil
		},
	}

	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	root.PersistentFlags().String("taxonomy", "", "a taxonomy YAML file (default is the built-in tables)")

	_ = c.v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	_ = c.v.BindPFlag("json", root.PersistentFlags().Lookup("json"))
	_ = c.v.BindPFlag("taxonomy", root.PersistentFlags().Lookup("taxonomy"))
	_ = c.v.BindEnv("taxonomy", "TAXONOMY_FILE")

	root.AddCommand(
		c.equivalentsCmd(),
		c.similarityCmd(),
		c.requirementCmd(),
		c.rolesCmd(),
		c.visibilityCmd(),
		c.progressionCmd(),
		c.taxonomyCmd(),
		c.migrateCmd(),
		c.seedCmd(),
		versionCmd(),
	)
	return root
}

func (c *cli) engines() (*app.Engines, error) {
	return app.NewEngines(config.MatchingConfig{TaxonomyFile: c.v.GetString("taxonomy")})
}

func (c *cli) equivalence() (usecase.EquivalenceUsecase, error) {
	e, err := c.engines()
	if err != nil {
		return nil, err
	}
	return usecase.NewEquivalenceUsecase(e.Resolver, nil, usecase.EquivalenceConfig{}, c.logger), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readJSONFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", appName, version)
		},
	}
}
