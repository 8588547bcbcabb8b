package generation

import (
	"errors"
	"math/rand"
	"testing"

	"scavenger-board/data"
)

func TestVariantSelectorReturnsMatchingIndex(t *testing.T) {
	selector := NewVariantSelector(rand.New(rand.NewSource(5)))
	candidates := []data.Prefab{data.Wall1, data.Wall2, data.Wall3}

	seen := make(map[int]bool)
	for i := 0; i < 300; i++ {
		idx, prefab, err := selector.Pick(candidates)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if candidates[idx] != prefab {
			t.Fatalf("Index %d does not match %v", idx, prefab)
		}
		seen[idx] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected every candidate picked, got %v", seen)
	}
}

func TestVariantSelectorEmpty(t *testing.T) {
	selector := NewVariantSelector(rand.New(rand.NewSource(6)))
	if _, _, err := selector.Pick(nil); !errors.Is(err, ErrEmptyCandidateList) {
		t.Errorf("Expected ErrEmptyCandidateList, got %v", err)
	}
}
