// Package syncx implements the client-side resource synchronization layer:
// a cached snapshot of a server-owned collection kept fresh by explicit
// fetches and a push-subscription channel, a durable "active item"
// selection, and a quota-guarded create path.
//
// The package is written once and instantiated per resource kind (suites,
// activity records). All remote interactions go through the narrow
// collaborator interfaces declared in collaborators.go; nothing in here
// talks to the network or renders UI directly.
package syncx
