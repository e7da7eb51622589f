// Package main hosts the mirkit CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the dataset registry: listing
// datasets and tracks, downloading and extracting the artifacts a dataset
// publishes, validating a local copy against its packaged manifest, browsing
// past validation runs, and configuration scaffolding. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
