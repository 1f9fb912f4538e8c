// Package connectors holds widget behavior without markup.
//
// A connector subscribes a render callback to the search lifecycle: it
// receives every delivery from the orchestrator, derives a typed payload
// from the current state and results, and invokes the callback with it,
// passing isFirstRender=true exactly once before any real update. The
// bundled widgets are views over these connectors; bring your own render
// function to build a custom view with the same behavior.
package connectors
