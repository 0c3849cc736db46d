//go:build js && wasm

// Command wasm exposes the greeting to the browser via WebAssembly.
// After loading, it registers a global JavaScript function:
//
//	log_msg()
//
// Invoking it writes "Hello, WASM!" to the browser console, matching the
// contract of the original browser binding.
package main

import (
	"syscall/js"

	"github.com/Koranir/wasm-web-basics/console"
	"github.com/Koranir/wasm-web-basics/greeting"
)

// consoleHostCall bridges the console capability onto the browser's console
// object. Capability function names line up with the console methods (log,
// info, warn, error, debug), so the call is a direct pass-through.
func consoleHostCall(_ string, _ string, function string, payload []byte) ([]byte, error) {
	js.Global().Get("console").Call(function, string(payload))
	return nil, nil
}

func main() {
	c, err := console.New(console.Config{HostCall: consoleHostCall})
	if err != nil {
		panic(err)
	}

	emitter, err := greeting.New(greeting.Config{Console: c})
	if err != nil {
		panic(err)
	}

	js.Global().Set("log_msg", js.FuncOf(func(js.Value, []js.Value) any {
		emitter.LogMsg()
		return nil
	}))

	select {} // keep the WASM module alive until the page is closed
}
