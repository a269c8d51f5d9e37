package bt

// TaskResult is the outcome of a single Run of a task.
type TaskResult int

const (
	Success TaskResult = iota
	Failure
	// Running means the task has not finished and wants to be run again on
	// the next tick.
	Running
)

func (r TaskResult) String() string {
	switch r {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case Running:
		return "Running"
	default:
		return "Invalid"
	}
}
