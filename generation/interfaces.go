package generation

// BoardBuilder builds a board for a level. LevelSystem depends on this rather
// than on BoardGenerator, so it can be driven by a stub builder.
type BoardBuilder interface {
	Build(level int) (BuildReport, error)
	Dimensions() (columns, rows int)
}
