package app

import (
	"fmt"

	"career-match/internal/config"
	"career-match/internal/domain/equivalence"
	"career-match/internal/domain/progression"
	"career-match/internal/domain/targeting"
	"career-match/internal/domain/taxonomy"
)

// Engines are the stateless matching components. They hold no connections and are safe to share.
type Engines struct {
	Taxonomy  *taxonomy.Taxonomy
	Resolver  *equivalence.Resolver
	Targeting *targeting.Engine
	Tracker   *progression.Tracker
}

// NewEngines builds the engines from the built-in tables, or from cfg.TaxonomyFile when set.
func NewEngines(cfg config.MatchingConfig) (*Engines, error) {
	tax := taxonomy.Default()
	if cfg.TaxonomyFile != "" {
		loaded, err := taxonomy.LoadFile(cfg.TaxonomyFile)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		tax = loaded
	}

	var opts []equivalence.Option
	if cfg.EquivalenceThreshold > 0 {
		opts = append(opts, equivalence.WithEquivalenceThreshold(cfg.EquivalenceThreshold))
	}
	if cfg.MinGrade > 0 {
		opts = append(opts, equivalence.WithDefaultMinGrade(cfg.MinGrade))
	}
	resolver := equivalence.NewResolver(tax, opts...)

	return &Engines{
		Taxonomy: tax,
		Resolver: resolver,
		Targeting: targeting.NewEngine(tax, targeting.Thresholds{
			Academic:   cfg.AcademicGate,
			Geographic: cfg.GeographicGate,
			Experience: cfg.ExperienceGate,
		}),
		Tracker: progression.NewTracker(resolver),
	}, nil
}
