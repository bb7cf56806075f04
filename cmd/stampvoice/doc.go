// Package main hosts the stampvoice CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into pipeline
// runs: analyze (image → structured JSON, optionally narrated), narrate
// (existing result → voice script + audio), show (render a saved record),
// and config scaffolding. Configuration resolution and structured logging
// setup live here so the internal packages stay free of process concerns.
package main
