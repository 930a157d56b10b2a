package utils

import (
	"fmt"
	"runtime/debug"
)

// SafelyGo runs f in a goroutine, turning a panic into a call to onErr.
func SafelyGo(f func(), onErr func(err error)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if onErr != nil {
					onErr(fmt.Errorf("panic: %v\n%s", r, debug.Stack()))
				}
			}
		}()
		f()
	}()
}
