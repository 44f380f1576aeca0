package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"career-match/internal/database"
	"career-match/internal/domain/profile"
	"career-match/internal/domain/progression"
	"career-match/internal/infrastructure/cache"
	"career-match/internal/logger"
	"career-match/internal/repository"
)

type ProgressionUsecase interface {
	Analyze(ctx context.Context, candidate profile.Candidate) (progression.Analysis, error)
	AnalyzeCandidate(ctx context.Context, candidateID uuid.UUID) (progression.Analysis, error)
}

type Progression struct {
	tracker    *progression.Tracker
	candidates repository.CandidateRepository
	cache      Cache
	ttl        time.Duration
	logger     *zap.Logger
}

func NewProgressionUsecase(tracker *progression.Tracker, candidates repository.CandidateRepository, c Cache, ttl time.Duration, log *zap.Logger) *Progression {
	return &Progression{
		tracker:    tracker,
		candidates: candidates,
		cache:      orNoCache(c),
		ttl:        ttl,
		logger:     logger.Component(log, "progression"),
	}
}

// Analyze runs the tracker over a history supplied by the caller. Nothing is cached.
func (u *Progression) Analyze(_ context.Context, candidate profile.Candidate) (progression.Analysis, error) {
	if err := candidate.Validate(); err != nil {
		return progression.Analysis{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return u.tracker.Analyze(candidate), nil
}

// AnalyzeCandidate analyzes a stored candidate, reading through the cache. Entries are keyed
// by candidate and calendar day since undated records are placed in the current year.
func (u *Progression) AnalyzeCandidate(ctx context.Context, candidateID uuid.UUID) (progression.Analysis, error) {
	if candidateID == uuid.Nil {
		return progression.Analysis{}, fmt.Errorf("%w: candidate_id is required", ErrInvalidInput)
	}

	key := cache.ScopedKey(cache.ProgressionPrefix, candidateID.String(), time.Now().UTC().Format(time.DateOnly))
	var cached progression.Analysis
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	candidate, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCandidateNotFound):
			return progression.Analysis{}, ErrCandidateNotFound
		case errors.Is(err, database.ErrNoDatabase):
			return progression.Analysis{}, ErrUnavailable
		}
		u.logger.Error("load candidate failed", zap.String("candidate_id", candidateID.String()), zap.Error(err))
		return progression.Analysis{}, fmt.Errorf("%w: load candidate", ErrInternal)
	}

	analysis := u.tracker.Analyze(candidate)
	if err := u.cache.SetJSON(ctx, key, analysis, u.ttl); err != nil {
		u.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return analysis, nil
}
