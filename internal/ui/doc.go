// Package ui is the pane layer: named rectangular panes drawn onto a
// surface.Screen, a registry that owns them, and the focus order that decides
// which pane is selected.
//
// Core abstractions:
//   - Pane: a bordered, titled region with a geometry function and a content grid
//   - Registry: name-keyed panes plus a focus ring; translates Signals into pane operations
//   - Layout: the caller-supplied set of panes and initial focus order
//   - Keymap: key bindings resolved to Actions
//   - App: maps terminal Events to registry notifications and flushes the screen
package ui
