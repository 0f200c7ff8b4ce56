package operations

// Recorder observes every external command string at the moment it is
// issued. It is purely observational; execution ordering is fixed by
// the operations themselves.
type Recorder interface {
	Record(command string)
	Reset()
	Commands() []string
}

// StackRecorder keeps the ordered commands of one run.
type StackRecorder struct {
	commands []string
}

// NewStackRecorder creates an empty recorder.
func NewStackRecorder() *StackRecorder {
	return &StackRecorder{}
}

// Record appends a command to the stack.
func (r *StackRecorder) Record(command string) {
	r.commands = append(r.commands, command)
}

// Reset clears the stack. The dispatcher calls this at the start of
// every run so stale entries never leak into the next run.
func (r *StackRecorder) Reset() {
	r.commands = nil
}

// Commands returns a copy of the recorded commands in issue order.
func (r *StackRecorder) Commands() []string {
	out := make([]string, len(r.commands))
	copy(out, r.commands)
	return out
}

// NopRecorder discards everything. Production callers that do not need
// the run report can swap it in without behavior change.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(string) {}

// Reset implements Recorder.
func (NopRecorder) Reset() {}

// Commands implements Recorder.
func (NopRecorder) Commands() []string { return nil }
