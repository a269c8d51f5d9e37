package bt

// LeafTask wraps an action function as a Task. The action is the point where
// the tree touches game state; whatever it captures is private to it.
type LeafTask struct {
	action func() TaskResult
}

var _ Task = (*LeafTask)(nil)

// NewLeafTask creates a leaf running action on every Run.
func NewLeafTask(action func() TaskResult) *LeafTask {
	if action == nil {
		panic(ErrNilAction)
	}
	return &LeafTask{action: action}
}

// Run invokes the action and returns its result verbatim.
func (l *LeafTask) Run() TaskResult { return l.action() }
