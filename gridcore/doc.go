// Package gridcore holds the operator input state of the sorting belt: the
// 3x3 matrix of cell markers, the cursor, and the two-step start latch.
//
// The state is mutated only through HandleKey and Reset. Renderers read the
// exported fields and never write them.
package gridcore
