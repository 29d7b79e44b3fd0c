// Package ui implements the terminal interface with bubbletea. The model is
// the single owner of all view state: the flattened rows, the table cursor,
// and the profile selector with its own cursor. Rendering reads the latest
// store snapshot; input handling mutates only the model.
package ui
