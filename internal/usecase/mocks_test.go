package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"career-match/internal/domain/job"
	"career-match/internal/domain/profile"
	"career-match/internal/repository"
)

type mockJobRepo struct {
	postings map[uuid.UUID]job.Posting
	err      error
}

func (m mockJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	if m.err != nil {
		return job.Posting{}, m.err
	}
	p, ok := m.postings[id]
	if !ok {
		return job.Posting{}, repository.ErrJobNotFound
	}
	return p, nil
}

type mockCandidateRepo struct {
	items []profile.Candidate
	err   error
	calls int
}

func (m *mockCandidateRepo) FindByID(_ context.Context, id uuid.UUID) (profile.Candidate, error) {
	m.calls++
	if m.err != nil {
		return profile.Candidate{}, m.err
	}
	for _, c := range m.items {
		if c.ID == id {
			return c, nil
		}
	}
	return profile.Candidate{}, repository.ErrCandidateNotFound
}

func (m *mockCandidateRepo) FindEligible(context.Context, int) ([]profile.Candidate, error) {
	m.calls++
	return m.items, m.err
}

type memCache struct {
	mu    sync.Mutex
	data  map[string][]byte
	sets  int
	locks map[string]bool
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, locks: map[string]bool{}}
}

func (c *memCache) Available() bool { return true }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	delete(c.locks, key)
	return nil
}

func (c *memCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locks[key] {
		return false, nil
	}
	c.locks[key] = true
	return true, nil
}

type recordingNotifier struct {
	jobID   uuid.UUID
	reach   int
	average float64
	calls   int
}

func (n *recordingNotifier) TargetingCompleted(jobID uuid.UUID, _ string, reach int, average float64) {
	n.jobID, n.reach, n.average = jobID, reach, average
	n.calls++
}
