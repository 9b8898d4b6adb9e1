package snapshots

// Job adapts the recorder to the scheduler's job interface.
type Job struct {
	recorder *Recorder
}

// NewJob creates a scheduled snapshot job
func NewJob(recorder *Recorder) *Job {
	return &Job{recorder: recorder}
}

// Name returns the job name
func (j *Job) Name() string {
	return "valuation_snapshot"
}

// Run snapshots every stored portfolio
func (j *Job) Run() error {
	_, err := j.recorder.RecordAll()
	return err
}
