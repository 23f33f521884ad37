// Package util provides shared utility functions.
package util

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultShortIDLength is the default number of characters for short IDs.
	DefaultShortIDLength = 8
	// MaxAmbiguousCandidates is the max number of candidates to show in ambiguous error.
	MaxAmbiguousCandidates = 5
)

// Errors returned by ID resolution functions.
var (
	ErrAmbiguousID = errors.New("ambiguous ID prefix")
	ErrNotFound    = errors.New("not found")
)

// ShortID returns a shortened version of an ID.
// If n is 0 or negative, DefaultShortIDLength (8) is used.
//
// Examples:
//
//	ShortID("1b4e28ba-2fa1-11d2-883f-0016d3cca427", 0) → "1b4e28ba"
//	ShortID("1b4e28ba", 20) → "1b4e28ba" (no truncation if shorter)
func ShortID(id string, n int) string {
	if n <= 0 {
		n = DefaultShortIDLength
	}
	if len(id) <= n {
		return id
	}
	return id[:n]
}

// ResolveIDPrefix resolves an ID or ID prefix against the known IDs.
//
// Resolution rules:
//  1. An exact match wins.
//  2. If the prefix matches exactly one ID, return that ID.
//  3. If multiple match, return ErrAmbiguousID with candidates.
//  4. If none match, return ErrNotFound.
func ResolveIDPrefix(idOrPrefix string, ids []string) (string, error) {
	prefix := strings.ToLower(strings.TrimSpace(idOrPrefix))
	if prefix == "" {
		return "", fmt.Errorf("activity ID: %w", ErrNotFound)
	}

	var candidates []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			candidates = append(candidates, id)
		}
	}
	return resolveFromCandidates(prefix, candidates, "activity")
}

// resolveFromCandidates handles the common resolution logic.
func resolveFromCandidates(prefix string, candidates []string, entityType string) (string, error) {
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%s with prefix %q: %w", entityType, prefix, ErrNotFound)
	case 1:
		return candidates[0], nil
	default:
		shown := make([]string, 0, MaxAmbiguousCandidates)
		for i, c := range candidates {
			if i == MaxAmbiguousCandidates {
				break
			}
			shown = append(shown, ShortID(c, 0))
		}
		return "", fmt.Errorf("%w: prefix %q matches %d %s records: %v",
			ErrAmbiguousID, prefix, len(candidates), entityType, shown)
	}
}
