package input

// Source is the per-frame control signal read by the simulation driver
type Source interface {
	Wind() (x, y, z float64)
	Spread() float64
	Pointer() float64
	Running() bool
}
