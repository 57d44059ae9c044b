package components

// SpawnEntry is one scheduled enemy in a wave
type SpawnEntry struct {
	Kind    EnemyKind
	Lateral *float64 // Fixed lateral position, nil spawns at a random lane position
	Delay   int      // Ticks after wave start
}

// Wave is an ordered list of spawn entries
type Wave struct {
	Name    string
	Entries []SpawnEntry
}

// PendingSpawn is a queued entry of the running wave, delay already adjusted for repetition
type PendingSpawn struct {
	Kind    EnemyKind
	Lateral *float64
	Delay   int
}

// Lateral returns a pointer to x for use in SpawnEntry literals
func Lateral(x float64) *float64 {
	return &x
}
