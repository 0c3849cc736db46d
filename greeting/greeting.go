package greeting

import (
	"errors"

	"github.com/Koranir/wasm-web-basics/console"
	"github.com/Koranir/wasm-web-basics/metrics"
)

// Message is the fixed text written to the host console on every invocation.
const Message = "Hello, WASM!"

var (
	// ErrConsoleNil is returned when no console client is provided.
	ErrConsoleNil = errors.New("console client cannot be nil")
)

// Config controls how an Emitter is wired to host capabilities.
type Config struct {
	// Console is the host console client the message is written through.
	Console console.Client

	// Invocations optionally counts LogMsg calls through the host metrics
	// capability. When nil, LogMsg performs the console write and nothing
	// else.
	Invocations *metrics.Counter
}

// Emitter writes the fixed greeting to the host console.
type Emitter struct {
	console     console.Client
	invocations *metrics.Counter
}

// New creates an Emitter bound to the provided console client.
func New(cfg Config) (*Emitter, error) {
	if cfg.Console == nil {
		return nil, ErrConsoleNil
	}

	return &Emitter{
		console:     cfg.Console,
		invocations: cfg.Invocations,
	}, nil
}

// LogMsg writes Message to the host console. It takes no input and returns
// nothing; the single console write is its only side effect unless an
// invocation counter is configured.
func (e *Emitter) LogMsg() {
	e.console.Log(Message)

	if e.invocations != nil {
		e.invocations.Inc()
	}
}

// Handler adapts LogMsg to the waPC handler signature. The payload is
// ignored and no response bytes are produced.
func (e *Emitter) Handler(_ []byte) ([]byte, error) {
	e.LogMsg()
	return nil, nil
}
