// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodBinaryTree        = "BinaryTree"
	MethodIsolated          = "Isolated"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomEdges       = "RandomEdges"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest path with at least one arc.
const MinPathNodes = 2

// MinCycleNodes is the smallest ring without loops or parallel arcs.
const MinCycleNodes = 3

// MinStarNodes is one hub plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-cycle rim plus the hub.
const MinWheelNodes = 4

// MinGridDim is the smallest grid dimension; a 1×1 grid has no arcs but is
// valid.
const MinGridDim = 1

// MinTreeDepth is a tree consisting of its root only.
const MinTreeDepth = 1

// MinProbability and MaxProbability bound p in RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
