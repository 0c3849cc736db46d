/*
Command function builds the greeting as a waPC guest module. Hosts invoke
the registered log_msg function, which writes "Hello, WASM!" back through
the host's console capability.
*/
package main

import (
	sdk "github.com/Koranir/wasm-web-basics"
	"github.com/Koranir/wasm-web-basics/console"
	"github.com/Koranir/wasm-web-basics/greeting"
)

func main() {
	c, err := console.New(console.Config{})
	if err != nil {
		return
	}

	emitter, err := greeting.New(greeting.Config{Console: c})
	if err != nil {
		return
	}

	// Register the handler under the log_msg export.
	if _, err := sdk.New(sdk.Config{Handler: emitter.Handler}); err != nil {
		return
	}
}
