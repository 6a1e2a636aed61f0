package model

// JobReport records how far a job got
type JobReport struct {
	Job        Job
	State      JobState
	Downloaded int64          // Bytes written to the archive file
	Extracted  *ExtractResult // nil until extraction succeeds
}

// Step returns the step that runs next from the current state
func (x *JobReport) Step() string {
	switch x.State {
	case JobStatePending:
		return "download"
	case JobStateDownloaded:
		return "extract"
	case JobStateExtracted:
		return "clean up"
	default:
		return ""
	}
}
