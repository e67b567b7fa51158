// Package trace logs entry to and exit from a scope.
//
//	func work(logger log.Logger) {
//	    defer trace.Enter(logger, "work").Exit()
//	    ...
//	}
//
// Both lines are written at debug level, so a level filter above debug hides them.
package trace

import (
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// noCopy may be embedded in structs which must not be copied after first use.
// go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Guard writes the exit line for a scope opened by Enter.
// A Guard must not be copied.
type Guard struct {
	_ noCopy

	logger log.Logger
	name   string
	once   sync.Once
}

// Enter logs that the scope called name was entered and returns the Guard
// whose Exit logs leaving it. A nil logger discards both lines.
func Enter(logger log.Logger, name string) *Guard {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	g := &Guard{logger: logger, name: name}
	level.Debug(g.logger).Log("msg", "entering", "func", name)
	return g
}

// Exit logs that the scope was left. Only the first call logs.
func (g *Guard) Exit() {
	g.once.Do(func() {
		level.Debug(g.logger).Log("msg", "exiting", "func", g.name)
	})
}
