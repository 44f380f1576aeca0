package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"career-match/internal/domain/equivalence"
	"career-match/internal/domain/taxonomy"
	"career-match/internal/infrastructure/cache"
	"career-match/internal/logger"
)

const MaxBatchCourses = 100

type CourseQuery struct {
	CourseName  string
	Institution string
}

type SimilarityResult struct {
	From         taxonomy.SkillFamilyID `json:"from"`
	To           taxonomy.SkillFamilyID `json:"to"`
	Similarity   float64                `json:"similarity"`
	SharedSkills []string               `json:"shared_skills"`
}

type EquivalenceUsecase interface {
	FindEquivalents(ctx context.Context, q CourseQuery) (equivalence.Result, error)
	FindEquivalentsBatch(ctx context.Context, qs []CourseQuery) ([]equivalence.Result, error)
	CheckRequirementMatch(ctx context.Context, student equivalence.StudentCourse, req equivalence.CourseRequirement, minSimilarity float64) (equivalence.RequirementMatch, error)
	Similarity(ctx context.Context, a, b string) (SimilarityResult, error)
	Roles(ctx context.Context) []taxonomy.JobRoleProfile
}

type Equivalence struct {
	resolver      *equivalence.Resolver
	cache         Cache
	ttl           time.Duration
	workers       int
	minSimilarity float64
	logger        *zap.Logger
}

type EquivalenceConfig struct {
	CacheTTL      time.Duration
	Workers       int
	MinSimilarity float64
}

func NewEquivalenceUsecase(resolver *equivalence.Resolver, c Cache, cfg EquivalenceConfig, log *zap.Logger) *Equivalence {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MinSimilarity <= 0 {
		cfg.MinSimilarity = equivalence.DefaultRequirementSimilarity
	}
	return &Equivalence{
		resolver:      resolver,
		cache:         orNoCache(c),
		ttl:           cfg.CacheTTL,
		workers:       cfg.Workers,
		minSimilarity: cfg.MinSimilarity,
		logger:        logger.Component(log, "equivalence"),
	}
}

// FindEquivalents resolves one course. An unresolved course is not an error: the result
// carries the message and suggestions.
func (u *Equivalence) FindEquivalents(ctx context.Context, q CourseQuery) (equivalence.Result, error) {
	name := strings.TrimSpace(q.CourseName)
	if name == "" {
		return equivalence.Result{}, fmt.Errorf("%w: course_name is required", ErrInvalidInput)
	}
	inst := strings.TrimSpace(q.Institution)

	// Course and institution lookups are case-sensitive, so the key keeps the trimmed input as is.
	key := cache.Key(cache.EquivalencePrefix, name, inst)
	var cached equivalence.Result
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	res := u.resolver.FindEquivalents(name, inst)
	if err := u.cache.SetJSON(ctx, key, res, u.ttl); err != nil {
		u.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return res, nil
}

// FindEquivalentsBatch resolves every query concurrently; results keep input order.
func (u *Equivalence) FindEquivalentsBatch(ctx context.Context, qs []CourseQuery) ([]equivalence.Result, error) {
	if len(qs) == 0 || len(qs) > MaxBatchCourses {
		return nil, fmt.Errorf("%w: between 1 and %d courses required", ErrInvalidInput, MaxBatchCourses)
	}
	for i, q := range qs {
		if strings.TrimSpace(q.CourseName) == "" {
			return nil, fmt.Errorf("%w: courses[%d].course_name is required", ErrInvalidInput, i)
		}
	}

	out := make([]equivalence.Result, len(qs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, q := range qs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := u.FindEquivalents(gctx, q)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	u.logger.Debug("batch resolved", zap.Int("courses", len(qs)))
	return out, nil
}

func (u *Equivalence) CheckRequirementMatch(_ context.Context, student equivalence.StudentCourse, req equivalence.CourseRequirement, minSimilarity float64) (equivalence.RequirementMatch, error) {
	if strings.TrimSpace(student.Name) == "" || strings.TrimSpace(req.CourseName) == "" {
		return equivalence.RequirementMatch{}, fmt.Errorf("%w: student and required course names are required", ErrInvalidInput)
	}
	if minSimilarity < 0 || minSimilarity > 1 {
		return equivalence.RequirementMatch{}, fmt.Errorf("%w: min_similarity must be within [0, 1]", ErrInvalidInput)
	}
	if minSimilarity == 0 {
		minSimilarity = u.minSimilarity
	}
	return u.resolver.CheckRequirementMatch(student, req, minSimilarity), nil
}

func (u *Equivalence) Similarity(_ context.Context, a, b string) (SimilarityResult, error) {
	tax := u.resolver.Taxonomy()
	fa := taxonomy.SkillFamilyID(strings.TrimSpace(a))
	fb := taxonomy.SkillFamilyID(strings.TrimSpace(b))
	for _, id := range []taxonomy.SkillFamilyID{fa, fb} {
		if _, ok := tax.Family(id); !ok {
			return SimilarityResult{}, fmt.Errorf("%w: unknown skill family %q", ErrInvalidInput, id)
		}
	}
	return SimilarityResult{
		From:         fa,
		To:           fb,
		Similarity:   u.resolver.Similarity(fa, fb),
		SharedSkills: u.resolver.SharedSkills(fa, fb),
	}, nil
}

func (u *Equivalence) Roles(context.Context) []taxonomy.JobRoleProfile {
	return u.resolver.Taxonomy().Roles()
}
