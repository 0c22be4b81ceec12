// Package interactive is the full-screen operator dashboard: the input
// matrix, the start latch, the belt indicator and the machine output log.
//
// The dashboard is a single bubbletea model. Key messages go to the grid
// state machine, frame ticks advance the belt, and View only reads state.
//
// Launch with: sortbot ui (or sortbot tui)
package interactive
