/*
Package hostmock provides a friendly pretend host for waPC calls.

It's designed primarily for SDK development and advanced tests where you want
to validate exactly what a component is sending to the host-without needing a
real host running. No real hosts were harmed in the making of these tests.

Why use hostmock?

  - Validate routing: ensure calls use the expected namespace, capability, and function when you set them.
  - Count side effects: Calls and LastPayload record every invocation, so a
    test can assert that an entry point produced exactly one host call.
  - Inspect payloads: plug in a PayloadValidator to assert message contents.
  - Script responses: return custom bytes or simulate failures.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "webbasics",
	  ExpectedCapability: "console",
	  ExpectedFunction:   "log",
	  PayloadValidator: func(p []byte) error {
	    // Assert the message here
	    return nil
	  },
	})

	// Inject into a component under test
	resp, err := m.HostCall("webbasics", "console", "log", []byte("message"))

Behavior

  - Every invocation increments Calls and retains LastPayload, even when
    validation fails afterwards.
  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces ExpectedNamespace/Capability/Function and runs
    PayloadValidator when provided. If everything is in order, Response (when set)
    provides the return bytes; otherwise it returns nil.

Tips

  - Use table-driven tests for different routing and payload cases.
  - Keep the validator small and focused-decode, assert, return.
  - Leave fields blank when you want a wildcard—hostmock only enforces values you set.
*/
package hostmock
