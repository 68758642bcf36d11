// Package surface declares the widget capabilities the form engine depends
// on. Concrete toolkits live in sub-packages: headless keeps widgets in
// memory, prompt drives a terminal through question prompts, and bubble runs a
// full-screen terminal program.
//
// A Host models the toolkit's single UI loop. Engines built inside an
// existing surface run synchronously on that loop; standalone engines hand
// their construction to the loop with Dispatch and let the caller wait for
// the user to finish.
package surface
