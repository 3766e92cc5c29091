// Package typemap offers a lightweight, generic, concurrency-safe map with
// basic Get/Set/Delete/Keys/Range operations guarded by a sync.RWMutex.  It
// is intentionally minimal and tuned to the specific needs of designfmt.
package typemap
