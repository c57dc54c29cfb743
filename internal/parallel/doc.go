// Package parallel provides a work-stealing worker pool used to materialize
// many vertical lines of a curve pair at once.
package parallel
