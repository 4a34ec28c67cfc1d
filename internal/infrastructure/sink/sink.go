// Package sink provides the default navigation and notification adapters. The
// navigation primitive and notification toasts belong to the client surface;
// on the service side they are observed as structured log events, and tests
// swap in recording fakes.
package sink

import (
	"sync"

	"github.com/rs/zerolog"
)

// LogNavigator records the most recent navigation target and logs each one.
type LogNavigator struct {
	log zerolog.Logger

	mu   sync.RWMutex
	last string
}

func NewLogNavigator(log zerolog.Logger) *LogNavigator {
	return &LogNavigator{log: log}
}

func (n *LogNavigator) Navigate(path string) {
	n.mu.Lock()
	n.last = path
	n.mu.Unlock()
	n.log.Info().Str("path", path).Msg("navigate")
}

// Last returns the most recent navigation target, or "" when none occurred.
func (n *LogNavigator) Last() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.last
}

// LogNotifier emits fire-and-forget user notifications as log events.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(message string) {
	n.log.Info().Str("kind", "success").Msg(message)
}

func (n *LogNotifier) Error(message string) {
	n.log.Warn().Str("kind", "error").Msg(message)
}
