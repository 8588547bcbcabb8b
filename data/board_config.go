package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Configuration errors, reported by Validate before any board is built
var (
	ErrInvalidCategoryRange = errors.New("invalid category range")
	ErrEmptyCandidateList   = errors.New("empty candidate list")
	ErrInvalidBoardSize     = errors.New("invalid board size")
	ErrWrongPrefabFamily    = errors.New("prefab not allowed in category")
)

// CategoryConfig is the candidate list and count range of one placed category
type CategoryConfig struct {
	Candidates []Prefab `json:"candidates" jsonschema:"required,minItems=1"`
	Min        int      `json:"min" jsonschema:"required,minimum=0"`
	Max        int      `json:"max" jsonschema:"required,minimum=0"`
}

// BoardConfig holds the static board layout configuration
type BoardConfig struct {
	Columns    int            `json:"columns" jsonschema:"required,minimum=3"`
	Rows       int            `json:"rows" jsonschema:"required,minimum=3"`
	OuterWalls []Prefab       `json:"outerWalls" jsonschema:"required,minItems=1"`
	Floors     []Prefab       `json:"floors" jsonschema:"required,minItems=1"`
	Obstacles  CategoryConfig `json:"obstacles" jsonschema:"required"`
	Pickups    CategoryConfig `json:"pickups" jsonschema:"required"`
	// Enemy count is derived from the level, only the variants are configured
	Enemies []Prefab `json:"enemies" jsonschema:"required,minItems=1"`
}

// DefaultBoardConfig returns the classic 8x8 board
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Columns:    8,
		Rows:       8,
		OuterWalls: []Prefab{OuterWall1, OuterWall2, OuterWall3},
		Floors:     []Prefab{Floor1, Floor2, Floor3, Floor4, Floor5, Floor6, Floor7, Floor8},
		Obstacles: CategoryConfig{
			Candidates: []Prefab{Wall1, Wall2, Wall3, Wall4, Wall5, Wall6, Wall7, Wall8},
			Min:        5,
			Max:        9,
		},
		Pickups: CategoryConfig{
			Candidates: []Prefab{Food, Soda},
			Min:        1,
			Max:        5,
		},
		Enemies: []Prefab{Enemy1, Enemy2},
	}
}

// InteriorCells returns the number of cells random placement can use
func (c BoardConfig) InteriorCells() int {
	if c.Columns < 3 || c.Rows < 3 {
		return 0
	}
	return (c.Columns - 2) * (c.Rows - 2)
}

// Validate checks the configuration once, before it is handed to a generator
func (c BoardConfig) Validate() error {
	if c.Columns < 3 || c.Rows < 3 {
		return fmt.Errorf("%w: %dx%d, need at least 3x3", ErrInvalidBoardSize, c.Columns, c.Rows)
	}

	lists := []struct {
		name       string
		family     Family
		candidates []Prefab
	}{
		{"outerWalls", FamilyOuterWall, c.OuterWalls},
		{"floors", FamilyFloor, c.Floors},
		{"obstacles", FamilyObstacle, c.Obstacles.Candidates},
		{"pickups", FamilyPickup, c.Pickups.Candidates},
		{"enemies", FamilyEnemy, c.Enemies},
	}
	for _, l := range lists {
		if len(l.candidates) == 0 {
			return fmt.Errorf("%s: %w", l.name, ErrEmptyCandidateList)
		}
		for _, p := range l.candidates {
			if !p.Valid() {
				return fmt.Errorf("%s: unknown prefab %d", l.name, int(p))
			}
			if p.Family() != l.family {
				return fmt.Errorf("%s: %w: %v is a %v prefab", l.name, ErrWrongPrefabFamily, p, p.Family())
			}
		}
	}

	if err := c.Obstacles.validateRange("obstacles"); err != nil {
		return err
	}
	if err := c.Pickups.validateRange("pickups"); err != nil {
		return err
	}

	if need := c.Obstacles.Max + c.Pickups.Max; need > c.InteriorCells() {
		return fmt.Errorf("%w: %d obstacles and pickups do not fit %d interior cells",
			ErrInvalidBoardSize, need, c.InteriorCells())
	}
	return nil
}

func (c CategoryConfig) validateRange(name string) error {
	if c.Min < 0 || c.Max < 0 {
		return fmt.Errorf("%s: %w: negative count [%d, %d]", name, ErrInvalidCategoryRange, c.Min, c.Max)
	}
	if c.Min > c.Max {
		return fmt.Errorf("%s: %w: min %d > max %d", name, ErrInvalidCategoryRange, c.Min, c.Max)
	}
	return nil
}

// LoadBoardConfig reads a JSON board configuration. Fields missing from the
// file keep their DefaultBoardConfig values. The result is validated.
func LoadBoardConfig(filePath string) (BoardConfig, error) {
	cfg := DefaultBoardConfig()

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read board config: %w", err)
	}

	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse board config %s: %w", filePath, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("board config %s: %w", filePath, err)
	}
	return cfg, nil
}
