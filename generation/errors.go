package generation

import (
	"errors"

	"scavenger-board/data"
)

var (
	// ErrGridExhausted means more unique positions were requested than the
	// interior holds. The configured counts do not fit the board.
	ErrGridExhausted = errors.New("grid exhausted")
	// ErrInvalidLevel is returned for levels below 1
	ErrInvalidLevel = errors.New("invalid level")

	ErrEmptyCandidateList   = data.ErrEmptyCandidateList
	ErrInvalidCategoryRange = data.ErrInvalidCategoryRange
	ErrWrongPrefabFamily    = data.ErrWrongPrefabFamily
)
