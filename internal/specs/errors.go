package specs

import "fmt"

// MalformedRecordError reports a record that breaks the input contract: it
// cannot be decoded or has no string title. It is distinct from a record
// whose identity simply cannot be resolved.
type MalformedRecordError struct {
	ID     string
	Path   string
	Reason string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	where := e.ID
	if e.Path != "" {
		where = e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("malformed record %s: %s: %v", where, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed record %s: %s", where, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
