/*
Package types contains shared data structures used across the browserhost
service: instance settings snapshots, runtime capability flags, and the
input event structures forwarded to embedded browsers.

Types here have no behavior beyond trivial accessors so they can be imported
from any layer without creating dependency cycles.
*/
package types
