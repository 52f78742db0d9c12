/*
Package registry tracks the live embedded-content instances of one host
process and carries the notification channel that delivers named JSON events
to one instance or to all of them.

The registry is an explicit service object, not ambient global state, so
tests can run several independent registries side by side. Its mutex guards
only membership; it is never a substitute for the engine thread affinity
enforced by the dispatch bridge. Visitors invoked under the lock must only
enqueue asynchronous work — registering or unregistering from inside a visit
would deadlock.
*/
package registry
