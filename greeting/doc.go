/*
Package greeting implements the module's single exported behavior: writing
the fixed text "Hello, WASM!" to the host console.

An Emitter is wired to a console client at construction time and exposes
LogMsg, a no-input no-output entry point whose only side effect is one
console write. Handler adapts the same behavior to the waPC handler
signature for registration with wapc-style hosts.
*/
package greeting
