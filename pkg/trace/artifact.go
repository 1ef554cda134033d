package trace

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Artifact is the metadata reconstructed from a single archive filename.
// Records are transient: rebuilt on every directory scan, never persisted.
type Artifact struct {
	TestSlug        string // filesystem-safe identifier derived from the test name
	Status          Status
	CreatedAtMillis int64  // epoch milliseconds from the filename; 0 when absent
	SizeBytes       int64  // file size at scan time
	Filename        string // full on-disk name, used to build viewer links
}

// DisplayName converts the slug back to a readable name by replacing
// underscores with spaces. Lossy: the original punctuation is gone.
func (a Artifact) DisplayName() string {
	return strings.ReplaceAll(a.TestSlug, "_", " ")
}

// ParseArchiveName parses an archive filename per the naming grammar.
// The tagged form is tried first, then the legacy untagged form. Names
// matching neither still yield a record: slug is the basename without
// extension, status unknown, timestamp absent.
func ParseArchiveName(filename string) Artifact {
	base := filepath.Base(filename)

	if m := taggedName.FindStringSubmatch(base); m != nil {
		millis, _ := strconv.ParseInt(m[3], 10, 64)
		return Artifact{
			TestSlug:        m[1],
			Status:          statusFromTag(m[2]),
			CreatedAtMillis: millis,
			Filename:        base,
		}
	}

	if m := untaggedName.FindStringSubmatch(base); m != nil {
		millis, _ := strconv.ParseInt(m[2], 10, 64)
		return Artifact{
			TestSlug:        m[1],
			Status:          StatusUnknown,
			CreatedAtMillis: millis,
			Filename:        base,
		}
	}

	return Artifact{
		TestSlug: strings.TrimSuffix(base, filepath.Ext(base)),
		Status:   StatusUnknown,
		Filename: base,
	}
}
