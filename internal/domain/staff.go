package domain

// Staff represents a staff member supplied by the external directory.
// Immutable within the engine.
type Staff struct {
	ID        int64
	Name      string
	SkillTier *string
	IsActive  bool
}
