// Package dnd contains the drag-and-drop contracts shared by the board's
// panes and rows.
//
// Allowed here: the drag session, payload media types, drag effects, and the
// Draggable/Droppable interfaces.
// Not allowed here: rendering, store access, anything terminal-specific.
package dnd
