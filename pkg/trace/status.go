// Package trace owns the trace-archive naming contract: how a test name
// becomes a filesystem-safe archive name, how a pass/fail status is embedded
// in that name after the run, and how a name is parsed back into metadata.
//
// The filename is the only metadata store. An archive is named either
//
//	<slug>-<STATUS>-<13-digit-epoch-millis>.zip
//
// or, for archives produced before status tagging existed,
//
//	<slug>-<13-digit-epoch-millis>.zip
//
// Nothing else about the archive is recorded anywhere.
package trace

// Status represents the run outcome embedded in an archive filename.
type Status string

// Status values.
const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusUnknown Status = "unknown"
)

// Tag returns the uppercase filename segment for the status.
// Unknown has no tag (legacy archives carry no status segment).
func (s Status) Tag() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	default:
		return ""
	}
}

// statusFromTag maps a filename tag back to a Status.
func statusFromTag(tag string) Status {
	switch tag {
	case "PASS":
		return StatusPass
	case "FAIL":
		return StatusFail
	default:
		return StatusUnknown
	}
}
