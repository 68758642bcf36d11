// Package bubble implements the surface and host contracts as a full-screen
// bubbletea application. Rows are traversed with tab, text rows edit in
// place, toggles and buttons react to enter, choices and list selections
// move with the arrow keys.
package bubble
