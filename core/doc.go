// Package core owns application state and wires it to the display widgets.
//
// Allowed here:
// - the color/letter state cells and their pure update functions
// - trigger construction, key registry and message contracts
// - the Bubble Tea model (Init/Update/View) and app chrome (status, footer)
//
// Not allowed here:
// - widget rendering primitives
// - random generation; providers are injected
package core
