// Package cli provides the interactive resumefill command-line client.
//
// It wires configuration, the local store, the resume and application
// services, and an interactive REPL that drives the page agent when one is
// reachable. Typical flow: load the stored resume, start a background
// connectivity watcher, and execute user commands.
//
// Key features:
//   - Import / export the tagged resume text
//   - Browse and edit sections, groups and entries
//   - Fill page fields through the agent, with a copy fallback offline
//   - One-shot quick fill of a whole form
//   - Track job applications across pending/submitted buckets
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
