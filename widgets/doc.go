// Package widgets contains dumb render primitives.
//
// Allowed here:
// - pure rendering of props (displays, button chrome, heading, separator, stacks)
// - the memo gate that skips re-rendering unchanged props
//
// Not allowed here:
// - key or mouse handling, state ownership, provider calls
package widgets
