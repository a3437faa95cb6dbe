package domain

// BuildResult is the outcome recorded for a build.
type BuildResult string

const (
	// ResultSuccess is recorded when the process exits with status 0.
	ResultSuccess BuildResult = "SUCCESS"
	// ResultFailure is recorded for any other status and for aborted builds.
	ResultFailure BuildResult = "FAILURE"
)

// ResultFromExitCode maps a process exit status to a build result.
func ResultFromExitCode(code int) BuildResult {
	if code == 0 {
		return ResultSuccess
	}
	return ResultFailure
}

// Outcome is what the process runner observed.
type Outcome struct {
	// ExitCode is -1 when the process did not exit normally.
	ExitCode int
	Result   BuildResult
}

// NewOutcome builds an Outcome from an exit status.
func NewOutcome(code int) Outcome {
	return Outcome{ExitCode: code, Result: ResultFromExitCode(code)}
}

// Failed returns o with its result forced to FAILURE, keeping the exit code.
func (o Outcome) Failed() Outcome {
	o.Result = ResultFailure
	return o
}
