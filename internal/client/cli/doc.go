// Package cli provides the interactive qaboard command-line client.
//
// It wires configuration, the local durable store, the gRPC connection and an
// interactive REPL. After login the shell keeps one synchronized context per
// resource kind (test suites, activity entries); listings are served from the
// local cache and updated in the background by server pushes.
//
// Key features:
//   - Register / Login / Logout
//   - List and create test suites, switch the active one
//   - List and create activity entries
//   - Plan quota display
//   - Presigned attachment upload/download URLs
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
