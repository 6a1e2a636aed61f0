package model

// JobState is the progress of a single job
type JobState string

const (
	JobStatePending    JobState = "pending"
	JobStateDownloaded JobState = "downloaded"
	JobStateExtracted  JobState = "extracted"
	JobStateCleaned    JobState = "cleaned"
	JobStateFailed     JobState = "failed"
)
