package config

import (
	"math"
	"runtime/debug"
	"sync"
)

// DeepStack is the goroutine stack ceiling set by Setup. Operations on Nat and
// List values recurse once per successor or element, so large values need
// more than the default ceiling.
const DeepStack = math.MaxInt32

var (
	stackMutex sync.Mutex
	stackDepth int
	savedStack int
)

// Setup raises the stack ceiling to DeepStack. Calls may nest; only the
// outermost one saves the ceiling to restore.
func Setup() {
	stackMutex.Lock()
	defer stackMutex.Unlock()
	if stackDepth == 0 {
		savedStack = debug.SetMaxStack(DeepStack)
		logger.Printf("stack ceiling raised from %d to %d", savedStack, DeepStack)
	}
	stackDepth++
}

// Teardown undoes one call to Setup. When the outermost Setup is undone, the
// stack ceiling in effect before it is restored. Calling Teardown without a
// matching Setup does nothing.
func Teardown() {
	stackMutex.Lock()
	defer stackMutex.Unlock()
	if stackDepth == 0 {
		return
	}
	stackDepth--
	if stackDepth == 0 {
		debug.SetMaxStack(savedStack)
		logger.Printf("stack ceiling restored to %d", savedStack)
	}
}

// With calls f between Setup and Teardown. Teardown is called even if f
// panics.
func With(f func()) {
	Setup()
	defer Teardown()
	f()
}
