package constants

// Pseudo-perspective Projection
// Perspective factor f = ProjectionFOV / (depth + ProjectionNearOffset)
const (
	// ProjectionFOV scales the perspective factor, f = 1 at depth 1
	ProjectionFOV = 2.0

	// ProjectionNearOffset keeps the factor finite at depth 0
	ProjectionNearOffset = 1.0

	// HorizonFraction is the horizon row as a fraction of canvas height
	HorizonFraction = 0.32

	// FloorSpanFraction is the canvas height fraction covered by the floor at f = 1
	FloorSpanFraction = 0.62

	// LateralSpanFraction is the canvas width fraction per world unit at f = 1
	LateralSpanFraction = 0.075
)

// Lane Geometry (world units)
const (
	// LaneHalfWidth bounds lateral positions to [-LaneHalfWidth, LaneHalfWidth]
	LaneHalfWidth = 6.0

	// LaneLineCount is the number of converging lane lines drawn by the grid
	LaneLineCount = 7

	// LaneGridSamples is the number of depth samples projected per lane line
	LaneGridSamples = 48

	// LaneGridRowDepths is the spacing of the cross lines drawn on the floor
	LaneGridRowDepth = 4.0
)
