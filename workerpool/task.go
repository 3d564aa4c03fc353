package workerpool

// Task is a single call of the worker function of a WorkerPool.
type Task struct {
	params     []interface{}
	resultChan chan interface{}
}

// Param returns the parameter at the given index of the Submit call.
func (t Task) Param(index int) interface{} {
	return t.params[index]
}

// ParamCount returns the number of parameters of the Submit call.
func (t Task) ParamCount() int {
	return len(t.params)
}

// Return hands the result to the submitter. It must be called at most once per Task.
func (t Task) Return(result interface{}) {
	t.resultChan <- result
}
