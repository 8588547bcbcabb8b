package generation

import (
	"math/rand"

	"scavenger-board/data"
)

// VariantSelector picks a uniformly random variant from a candidate list
type VariantSelector struct {
	rng *rand.Rand
}

// NewVariantSelector creates a selector drawing from rng
func NewVariantSelector(rng *rand.Rand) *VariantSelector {
	return &VariantSelector{rng: rng}
}

// Pick returns the chosen variant and its index in candidates.
// Decorators branch on the index.
func (s *VariantSelector) Pick(candidates []data.Prefab) (int, data.Prefab, error) {
	if len(candidates) == 0 {
		return 0, data.PrefabNone, ErrEmptyCandidateList
	}
	i := s.rng.Intn(len(candidates))
	return i, candidates[i], nil
}
