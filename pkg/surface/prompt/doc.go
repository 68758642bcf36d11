// Package prompt implements the surface and host contracts on an interactive
// terminal. Each window is a numbered menu: picking a text entry prompts for
// new text, toggles ask for confirmation, choices and lists open a select
// prompt, panels open a nested menu and buttons run their action.
//
// The loop is driven by Host.Run on the calling goroutine, which then acts as
// the UI loop for every engine opened on the host.
package prompt
