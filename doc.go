/*
Package sdk provides the core entry point and runtime configuration for
building web-basics WebAssembly functions.

The package exposes New to register a waPC handler under a named export and a
RuntimeConfig that is shared by capability clients (e.g., console, metrics).
DefaultNamespace is used when a namespace is not explicitly provided, and
DefaultFunctionName keeps the export name of the original browser binding.
*/
package sdk
