package builder

// Method name tags used to prefix constructor errors.
const (
	MethodPath         = "Path"
	MethodRing         = "Ring"
	MethodWheel        = "Wheel"
	MethodStar         = "Star"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// Minimum sizes.
const (
	// MinPathNodes: a path of fewer than 2 intersections has no segment.
	MinPathNodes = 2
	// MinRingNodes: a ring needs 3 intersections to avoid parallel segments.
	MinRingNodes = 3
	// MinWheelNodes: the rim is a ring, plus one hub.
	MinWheelNodes = 4
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinGridDim: each dimension; a 1×1 grid has no segment and is rejected too.
	MinGridDim = 1
	// MinRandomSparseNodes: at least one pair.
	MinRandomSparseNodes = 2
)

// DefaultSpacing is the lattice step in metres when WithSpacing is not used.
const DefaultSpacing = 100

// DefaultIDPrefix prefixes generated segment IDs.
const DefaultIDPrefix = "s"

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
