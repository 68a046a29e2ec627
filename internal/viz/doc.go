// Package viz provides the full-screen terminal view of a running
// simulation, built on Bubble Tea. The only key it handles is quit.
package viz
