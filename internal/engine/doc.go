/*
Package engine defines the boundary to the embedded content engine and the
task dispatch bridge that gives the engine its thread affinity.

# Thread model

A single dispatcher goroutine stands in for the engine's UI thread. Every
read or mutation of a Browser handle happens inside a task submitted through
the Dispatcher; no other goroutine may touch a handle directly. Tasks capture
the handle by value at submission time, so destruction racing a queued task
degrades to a nil check inside the task, never a use-after-free.

# Failure model

Submission never returns an error to propagate. If the dispatcher has been
shut down, Post and Run report false and the task is dropped; callers proceed
as if the task ran against an already-destroyed handle. Blocking submission
from the dispatcher goroutine itself executes inline to avoid self-deadlock.
*/
package engine
