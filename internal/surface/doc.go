// Package surface is the drawing-surface capability the pane layer draws on.
//
// A Backend is the physical character grid (a tcell screen, or a Frame that
// bubbletea renders as a string). A Screen owns the Backend and a set of
// Windows. Drawing is two-phase: writes land in a Window's working buffer,
// Stage snapshots it as pending, and Screen.Flush composites every pending
// window onto the Backend and shows the result in one step.
package surface
