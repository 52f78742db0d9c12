/*
Package source implements the lifecycle of one embedded-content instance:
deferred browser creation, settings reconciliation, visibility and activity
policy, input forwarding, and the per-frame driver that paces all instances.

A Source never touches its browser handle directly. Every engine mutation is
a task submitted through the dispatch bridge, and queued tasks capture the
handle by value so destruction cannot race them. Reconfiguration that changes
any construction-time parameter destroys and recreates the browser, because
the engine accepts most parameters only at construction.
*/
package source
