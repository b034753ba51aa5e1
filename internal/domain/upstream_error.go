package domain

import "fmt"

// UpstreamError is a POS protocol failure: the service answered, but with a
// non-zero result code in the response body. Network-level failures are not
// UpstreamErrors; they degrade to empty result sets at the integrator.
type UpstreamError struct {
	Operation  string
	ResultCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("brink %s failed with result code %d: %s", e.Operation, e.ResultCode, e.Message)
}
