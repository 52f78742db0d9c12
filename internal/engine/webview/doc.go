/*
Package webview is an in-process implementation of the engine boundary,
backed by goja. Each browser handle owns an isolated JavaScript runtime with
a minimal window/document surface: listener registration, console capture,
visibility state, and dispatched notification events.

It exists so the control plane has a real engine to drive in development and
tests; an out-of-process engine can replace it behind the same interfaces.
All methods are engine-thread only, matching the dispatcher contract.
*/
package webview
