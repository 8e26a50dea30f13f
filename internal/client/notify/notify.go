// Package notify delivers user-facing messages produced by the sync layer.
package notify

import (
	"fmt"

	"github.com/avetrov/qaboard/internal/client/syncx"
)

// printlnFn abstracts output so tests can capture it.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// ConsoleSink prints notifications to stdout, prefixed with their type so
// warnings are distinguishable from errors in the REPL.
type ConsoleSink struct{}

func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{}
}

func (s *ConsoleSink) Notify(n syncx.Notification) {
	printlnFn(fmt.Sprintf("[%s] %s: %s", n.Type, n.Title, n.Message))
}
