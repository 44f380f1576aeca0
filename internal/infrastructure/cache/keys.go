package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

const (
	EquivalencePrefix = "equivalence:"
	ProgressionPrefix = "progression:"
	TargetingPrefix   = "targeting:"
	LockPrefix        = "lock:"
)

// Key hashes the JSON form of parts under prefix. Parts must marshal deterministically.
func Key(prefix string, parts ...any) string {
	b, _ := json.Marshal(parts)
	sum := sha256.Sum256(b)
	return prefix + hex.EncodeToString(sum[:])
}

// ScopedKey keeps an owner id readable in the key so pattern invalidation can find it.
func ScopedKey(prefix, owner string, parts ...any) string {
	return Key(prefix+strings.TrimSpace(owner)+":", parts...)
}

func LockKey(key string) string {
	return LockPrefix + key
}

// CandidatePatterns covers every cached entry scoped to the candidate.
func CandidatePatterns(candidateID string) []string {
	return []string{ProgressionPrefix + candidateID + ":*"}
}
