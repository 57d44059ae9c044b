package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityHorizon
	PriorityGrid
	PriorityParticle
	PriorityEnemy
	PriorityUI
	PriorityAnnounce
	PriorityPostProcess
	PriorityOverlay
	PriorityDebug
)
