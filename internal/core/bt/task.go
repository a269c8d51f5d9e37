// Package bt implements a tick-driven behavior tree engine.
//
// A tree is built once from leaves, composites and decorators and its root is
// run once per simulation tick. Execution is synchronous: Running is a value
// returned to the caller, who is expected to run the root again on the next
// tick. Tasks are not safe for concurrent use; a tree must have exactly one
// caller at a time.
package bt

// Task is a node of a behavior tree.
type Task interface {
	// Run executes one step of the task and reports its outcome.
	Run() TaskResult
}
