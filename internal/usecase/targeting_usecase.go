package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"career-match/internal/database"
	"career-match/internal/domain/job"
	"career-match/internal/domain/profile"
	"career-match/internal/domain/targeting"
	"career-match/internal/infrastructure/cache"
	"career-match/internal/logger"
	"career-match/internal/repository"
	"career-match/internal/worker"
)

const targetingLockTTL = 2 * time.Minute

type TargetingResult struct {
	JobID      uuid.UUID            `json:"job_id"`
	Candidates []targeting.Targeted `json:"candidates"`
	Stats      targeting.Stats      `json:"stats"`
}

type TargetingNotifier interface {
	TargetingCompleted(jobID uuid.UUID, title string, reach int, average float64)
}

type TargetingUsecase interface {
	DetermineVisibility(ctx context.Context, posting job.Posting, candidate profile.Candidate) (targeting.Visibility, error)
	TargetCandidates(ctx context.Context, jobID uuid.UUID) (TargetingResult, error)
}

type Targeting struct {
	engine     *targeting.Engine
	jobs       repository.JobPostingRepository
	candidates repository.CandidateRepository
	cache      Cache
	notifier   TargetingNotifier
	limits     worker.Limits
	logger     *zap.Logger
}

// TargetingConfig bounds batch scoring. RatePerSecond <= 0 leaves it unthrottled.
type TargetingConfig struct {
	Workers       int
	RatePerSecond int
}

func NewTargetingUsecase(
	engine *targeting.Engine,
	jobs repository.JobPostingRepository,
	candidates repository.CandidateRepository,
	c Cache,
	notifier TargetingNotifier,
	cfg TargetingConfig,
	log *zap.Logger,
) *Targeting {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Targeting{
		engine:     engine,
		jobs:       jobs,
		candidates: candidates,
		cache:      orNoCache(c),
		notifier:   notifier,
		limits:     worker.Limits{Workers: cfg.Workers, PerSecond: cfg.RatePerSecond},
		logger:     logger.Component(log, "targeting"),
	}
}

func (u *Targeting) DetermineVisibility(_ context.Context, posting job.Posting, candidate profile.Candidate) (targeting.Visibility, error) {
	if err := posting.Validate(); err != nil {
		return targeting.Visibility{}, fmt.Errorf("%w: job: %v", ErrInvalidInput, err)
	}
	if err := candidate.Validate(); err != nil {
		return targeting.Visibility{}, fmt.Errorf("%w: candidate: %v", ErrInvalidInput, err)
	}
	return u.engine.DetermineVisibility(posting, candidate), nil
}

// TargetCandidates scores every eligible candidate against the stored posting on the worker
// pool, ranks the visible ones and announces the run. Only one run per job proceeds at a time
// while the cache is reachable.
func (u *Targeting) TargetCandidates(ctx context.Context, jobID uuid.UUID) (TargetingResult, error) {
	if jobID == uuid.Nil {
		return TargetingResult{}, fmt.Errorf("%w: job_id is required", ErrInvalidInput)
	}

	posting, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return TargetingResult{}, u.storageErr(err, "load job", zap.String("job_id", jobID.String()))
	}
	if posting.ID == uuid.Nil {
		posting.ID = jobID
	}

	lock := cache.LockKey(cache.TargetingPrefix + jobID.String())
	acquired, err := u.cache.SetIfNotExists(ctx, lock, "1", targetingLockTTL)
	if err == nil && !acquired && u.cache.Available() {
		return TargetingResult{}, ErrTargetingRunning
	}
	if acquired {
		defer func() {
			_ = u.cache.Delete(context.WithoutCancel(ctx), lock)
		}()
	}

	candidates, err := u.candidates.FindEligible(ctx, repository.MinProfileCompletion)
	if err != nil {
		return TargetingResult{}, u.storageErr(err, "load candidates", zap.String("job_id", jobID.String()))
	}

	start := time.Now()
	targeted, err := u.evaluate(ctx, posting, candidates)
	if err != nil {
		return TargetingResult{}, err
	}
	stats := targeting.Summarize(targeted)

	u.logger.Info("targeting completed",
		zap.String("job_id", jobID.String()),
		zap.Int("evaluated", len(candidates)),
		zap.Int("reach", stats.TotalReach),
		zap.Duration("took", time.Since(start)),
	)
	if u.notifier != nil {
		u.notifier.TargetingCompleted(jobID, posting.Title, stats.TotalReach, stats.AverageMatchScore)
	}

	return TargetingResult{JobID: jobID, Candidates: targeted, Stats: stats}, nil
}

func (u *Targeting) evaluate(ctx context.Context, posting job.Posting, candidates []profile.Candidate) ([]targeting.Targeted, error) {
	slots := make([]*targeting.Targeted, len(candidates))
	err := worker.Each(ctx, u.limits, len(candidates), func(_ context.Context, i int) error {
		if t, ok := u.engine.Evaluate(posting, candidates[i]); ok {
			slots[i] = &t
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]targeting.Targeted, 0, len(slots))
	for _, t := range slots {
		if t != nil {
			out = append(out, *t)
		}
	}
	targeting.Rank(out)
	return out, nil
}

func (u *Targeting) storageErr(err error, op string, fields ...zap.Field) error {
	switch {
	case errors.Is(err, repository.ErrJobNotFound):
		return ErrJobNotFound
	case errors.Is(err, repository.ErrCandidateNotFound):
		return ErrCandidateNotFound
	case errors.Is(err, database.ErrNoDatabase):
		return ErrUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	u.logger.Error(op+" failed", append(fields, zap.Error(err))...)
	return fmt.Errorf("%w: %s", ErrInternal, op)
}
