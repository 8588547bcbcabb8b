package generation

import (
	"fmt"
	"math/bits"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"scavenger-board/data"
	"scavenger-board/ecs"
	"scavenger-board/spawners"
)

// BuildReport summarises one generated board
type BuildReport struct {
	ID            ulid.ULID // Correlates log lines of one build
	Level         int
	Columns, Rows int
	Tiles         TileCounts
	Obstacles     []ecs.EntityID
	Pickups       []ecs.EntityID
	Enemies       []ecs.EntityID
	Exit          ecs.EntityID
	Player        ecs.EntityID
}

// BoardGenerator builds a complete board for a level
type BoardGenerator struct {
	spawner    *spawners.EntitySpawner
	config     data.BoardConfig
	rng        *rand.Rand
	logMessage func(string)
}

// NewBoardGenerator creates a generator for a validated configuration.
// A nil rng is replaced by a time seeded one.
func NewBoardGenerator(spawner *spawners.EntitySpawner, config data.BoardConfig, rng *rand.Rand, logFunc func(string)) *BoardGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &BoardGenerator{
		spawner:    spawner,
		config:     config,
		rng:        rng,
		logMessage: logFunc,
	}
}

// SetSeed allows setting a specific seed for reproducible boards
func (g *BoardGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Config returns the board configuration
func (g *BoardGenerator) Config() data.BoardConfig {
	return g.config
}

// Dimensions returns the playable board size
func (g *BoardGenerator) Dimensions() (columns, rows int) {
	return g.config.Columns, g.config.Rows
}

// EnemyCount is floor(log2(level)): none on level 1, one from level 2, two
// from level 4 and so on. It is not capped by the board size.
func EnemyCount(level int) int {
	if level < 1 {
		return 0
	}
	return bits.Len(uint(level)) - 1
}

// Build lays out the tiles, then places obstacles, pickups and enemies on
// unique interior cells, then the exit and the player on opposite corners.
//
// Any error aborts the build and leaves the partially built board in place;
// the caller decides whether to halt.
func (g *BoardGenerator) Build(level int) (BuildReport, error) {
	report := BuildReport{
		ID:      ulid.Make(),
		Level:   level,
		Columns: g.config.Columns,
		Rows:    g.config.Rows,
	}
	if level < 1 {
		return report, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	g.log(fmt.Sprintf("Setup level %d (build %s)", level, report.ID))

	selector := NewVariantSelector(g.rng)

	// Creates the outer walls and floor
	tiles, err := BoardSetup(g.spawner, selector, g.config.Columns, g.config.Rows, g.config.OuterWalls, g.config.Floors)
	report.Tiles = tiles
	if err != nil {
		return report, fmt.Errorf("board setup: %w", err)
	}

	// The pool lives for this build only
	pool := NewPositionPool(g.rng)
	pool.Reset(g.config.Columns, g.config.Rows)
	planner := NewPlanner(g.rng, pool, selector, g.spawner)

	report.Obstacles, err = planner.Place(Category{
		Name:       "obstacles",
		Candidates: g.config.Obstacles.Candidates,
		Min:        g.config.Obstacles.Min,
		Max:        g.config.Obstacles.Max,
	}, g.decorateObstacle)
	if err != nil {
		return report, err
	}

	report.Pickups, err = planner.Place(Category{
		Name:       "pickups",
		Candidates: g.config.Pickups.Candidates,
		Min:        g.config.Pickups.Min,
		Max:        g.config.Pickups.Max,
	}, g.decoratePickup)
	if err != nil {
		return report, err
	}

	enemyCount := EnemyCount(level)
	report.Enemies, err = planner.Place(Category{
		Name:       "enemies",
		Candidates: g.config.Enemies,
		Min:        enemyCount,
		Max:        enemyCount,
	}, g.decorateEnemy)
	if err != nil {
		return report, err
	}

	// Corners sit outside the interior, so they never collide with placed objects
	report.Exit = g.spawner.CreateExit(g.config.Columns-1, g.config.Rows-1).ID
	report.Player = g.spawner.CreatePlayer(0, 0).ID

	g.log(fmt.Sprintf("Level %d: %d tiles, %d walls, %d pickups, %d enemies",
		level, tiles.Total(), len(report.Obstacles), len(report.Pickups), len(report.Enemies)))

	return report, nil
}

func (g *BoardGenerator) log(msg string) {
	if g.logMessage != nil {
		g.logMessage(msg)
	}
}
