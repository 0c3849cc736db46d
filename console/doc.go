/*
Package console offers a client for writing messages from web-basics
WebAssembly functions to the host's console.

The package exposes a small interface with Log plus convenience methods for
common console channels (Info, Warn, Error, Debug). A client instance handles
the host interaction behind the scenes, so guest code can focus on writing
messages. Writes are fire-and-forget: if the host console itself fails, that
failure stays on the host side.
*/
package console
