package data

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// Prefab is the opaque visual variant id attached to every board entity.
// Renderers map it to art; the board generator only branches on it.
type Prefab int

const (
	PrefabNone Prefab = iota
	OuterWall1
	OuterWall2
	OuterWall3
	Floor1
	Floor2
	Floor3
	Floor4
	Floor5
	Floor6
	Floor7
	Floor8
	Wall1
	Wall2
	Wall3
	Wall4
	Wall5
	Wall6
	Wall7
	Wall8
	Food
	Soda
	Enemy1
	Enemy2
	Exit
	Player
	prefabCount
)

var prefabNames = [prefabCount]string{
	PrefabNone: "None",
	OuterWall1: "OuterWall1",
	OuterWall2: "OuterWall2",
	OuterWall3: "OuterWall3",
	Floor1:     "Floor1",
	Floor2:     "Floor2",
	Floor3:     "Floor3",
	Floor4:     "Floor4",
	Floor5:     "Floor5",
	Floor6:     "Floor6",
	Floor7:     "Floor7",
	Floor8:     "Floor8",
	Wall1:      "Wall1",
	Wall2:      "Wall2",
	Wall3:      "Wall3",
	Wall4:      "Wall4",
	Wall5:      "Wall5",
	Wall6:      "Wall6",
	Wall7:      "Wall7",
	Wall8:      "Wall8",
	Food:       "Food",
	Soda:       "Soda",
	Enemy1:     "Enemy1",
	Enemy2:     "Enemy2",
	Exit:       "Exit",
	Player:     "Player",
}

// Family groups prefabs by the board category they may be configured for
type Family int

const (
	FamilyNone Family = iota
	FamilyOuterWall
	FamilyFloor
	FamilyObstacle
	FamilyPickup
	FamilyEnemy
	FamilyExit
	FamilyPlayer
)

var familyNames = [...]string{
	FamilyNone:      "none",
	FamilyOuterWall: "outer wall",
	FamilyFloor:     "floor",
	FamilyObstacle:  "obstacle",
	FamilyPickup:    "pickup",
	FamilyEnemy:     "enemy",
	FamilyExit:      "exit",
	FamilyPlayer:    "player",
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// Family returns the category the prefab belongs to
func (p Prefab) Family() Family {
	switch {
	case p >= OuterWall1 && p <= OuterWall3:
		return FamilyOuterWall
	case p >= Floor1 && p <= Floor8:
		return FamilyFloor
	case p >= Wall1 && p <= Wall8:
		return FamilyObstacle
	case p == Food || p == Soda:
		return FamilyPickup
	case p == Enemy1 || p == Enemy2:
		return FamilyEnemy
	case p == Exit:
		return FamilyExit
	case p == Player:
		return FamilyPlayer
	}
	return FamilyNone
}

// String returns the prefab name
func (p Prefab) String() string {
	if p < 0 || p >= prefabCount {
		return fmt.Sprintf("Prefab(%d)", int(p))
	}
	return prefabNames[p]
}

// Valid reports whether p is a known, non-empty prefab
func (p Prefab) Valid() bool {
	return p > PrefabNone && p < prefabCount
}

// MarshalText encodes the prefab by name
func (p Prefab) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown prefab %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a prefab name
func (p *Prefab) UnmarshalText(text []byte) error {
	prefab, ok := ParsePrefab(string(text))
	if !ok {
		return fmt.Errorf("unknown prefab %q", string(text))
	}
	*p = prefab
	return nil
}

// JSONSchema describes a prefab as one of the known names
func (Prefab) JSONSchema() *jsonschema.Schema {
	names := make([]interface{}, 0, prefabCount-1)
	for p := PrefabNone + 1; p < prefabCount; p++ {
		names = append(names, p.String())
	}
	return &jsonschema.Schema{
		Type: "string",
		Enum: names,
	}
}

// ParsePrefab looks a prefab up by name
func ParsePrefab(name string) (Prefab, bool) {
	for p := PrefabNone + 1; p < prefabCount; p++ {
		if prefabNames[p] == name {
			return p, true
		}
	}
	return PrefabNone, false
}

// Sprite identifies a frame of the sprite sheet
type Sprite int

// Damaged wall frames
const (
	SpriteSheet48 Sprite = 48 + iota
	SpriteSheet49
	SpriteSheet50
	SpriteSheet51
	SpriteSheet52
	SpriteSheet53
	SpriteSheet54
)

// String returns the sprite sheet frame name
func (s Sprite) String() string {
	return fmt.Sprintf("Scavengers_SpriteSheet_%d", int(s))
}

// DamagedWalls maps each inner wall variant to the frame shown once it is hit.
// Frame 52 appears twice.
var DamagedWalls = map[Prefab]Sprite{
	Wall1: SpriteSheet48,
	Wall2: SpriteSheet49,
	Wall3: SpriteSheet50,
	Wall4: SpriteSheet51,
	Wall5: SpriteSheet52,
	Wall6: SpriteSheet52,
	Wall7: SpriteSheet53,
	Wall8: SpriteSheet54,
}

// Audio identifies a sound cue played by the audio subsystem
type Audio int

const (
	AudioNone Audio = iota
	AudioFruit1
	AudioFruit2
	AudioSoda1
	AudioSoda2
	AudioEnemy1
	AudioEnemy2
	AudioChop1
	AudioChop2
	AudioDie
	AudioFootstep1
	AudioFootstep2
)

var audioNames = map[Audio]string{
	AudioNone:      "none",
	AudioFruit1:    "scavengers_fruit1",
	AudioFruit2:    "scavengers_fruit2",
	AudioSoda1:     "scavengers_soda1",
	AudioSoda2:     "scavengers_soda2",
	AudioEnemy1:    "scavengers_enemy1",
	AudioEnemy2:    "scavengers_enemy2",
	AudioChop1:     "scavengers_chop1",
	AudioChop2:     "scavengers_chop2",
	AudioDie:       "scavengers_die",
	AudioFootstep1: "scavengers_footstep1",
	AudioFootstep2: "scavengers_footstep2",
}

// String returns the clip name
func (a Audio) String() string {
	if name, ok := audioNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Audio(%d)", int(a))
}

// Cue groups
var (
	FruitCues    = []Audio{AudioFruit1, AudioFruit2}
	SodaCues     = []Audio{AudioSoda1, AudioSoda2}
	EnemyAttack  = []Audio{AudioEnemy1, AudioEnemy2}
	PlayerAttack = []Audio{AudioChop1, AudioChop2}
	PlayerDeath  = []Audio{AudioDie}
	PlayerWalk   = []Audio{AudioFootstep1, AudioFootstep2}
)
