package console

import (
	"errors"

	sdk "github.com/Koranir/wasm-web-basics"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "console"

	fnLog   = "log"
	fnInfo  = "info"
	fnWarn  = "warn"
	fnError = "error"
	fnDebug = "debug"
)

// HostCall defines the waPC host function signature used by console operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Client exposes convenience helpers for writing messages to the host console.
type Client interface {
	// Log writes a message to the host console's default sink.
	Log(message string)

	Info(message string)
	Warn(message string)
	Error(message string)
	Debug(message string)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig sdk.RuntimeConfig

	// HostCall overrides the waPC host function used for console operations.
	HostCall HostCall

	// ErrorHook, when set, receives host failures wrapped with
	// sdk.ErrHostCall. Writes stay fire-and-forget either way; the hook
	// exists for guests that want to observe dropped messages.
	ErrorHook func(error)
}

// client implements Client using the configured host call entrypoint.
type client struct {
	runtime   sdk.RuntimeConfig
	hostCall  HostCall
	errorHook func(error)
}

// New creates a Client that writes through the configured host capability.
func New(cfg Config) (Client, error) {
	runtimeCfg := cfg.SDKConfig
	if runtimeCfg.Namespace == "" {
		runtimeCfg.Namespace = sdk.DefaultNamespace
	}

	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &client{
		runtime:   runtimeCfg,
		hostCall:  hostCall,
		errorHook: cfg.ErrorHook,
	}, nil
}

func (c *client) Log(message string)   { c.write(fnLog, message) }
func (c *client) Info(message string)  { c.write(fnInfo, message) }
func (c *client) Warn(message string)  { c.write(fnWarn, message) }
func (c *client) Error(message string) { c.write(fnError, message) }
func (c *client) Debug(message string) { c.write(fnDebug, message) }

// write performs a single fire-and-forget host call; console failures are
// the host's concern, not the guest's. Failures reach the error hook when
// one is configured.
func (c *client) write(fn string, message string) {
	_, err := c.hostCall(c.runtime.Namespace, capabilityName, fn, []byte(message))
	if err != nil && c.errorHook != nil {
		c.errorHook(errors.Join(sdk.ErrHostCall, err))
	}
}
