package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// CrashHandler is invoked with the recovered value when a goroutine
// launched via Go panics. Replaceable so the runner can route crashes
// through its logger before exiting
var CrashHandler = func(r any) {
	fmt.Fprintf(os.Stderr, "crash detected: %v\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword inside the simulation core
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				CrashHandler(r)
			}
		}()
		fn()
	}()
}
