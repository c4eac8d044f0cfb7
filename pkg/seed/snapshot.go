package seed

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"
)

// FormatVersion is the snapshot file format written by this package.
const FormatVersion = "v1.0.0"

// Snapshot is a dataset plus the inputs that produced it.
type Snapshot struct {
	FormatVersion string   `json:"formatVersion"`
	RunID         string   `json:"runId"`
	Seed          int32    `json:"seed"`
	Options       Options  `json:"options"`
	Dataset       *Dataset `json:"dataset"`
}

// NewSnapshot wraps ds with a fresh run id.
func NewSnapshot(seed int32, opts Options, ds *Dataset) Snapshot {
	return Snapshot{
		FormatVersion: FormatVersion,
		RunID:         uuid.NewString(),
		Seed:          seed,
		Options:       opts,
		Dataset:       ds,
	}
}

// IsCompatibleVersion reports whether a snapshot written at version can be
// read by a reader at current. Major versions must match exactly.
func IsCompatibleVersion(version, current string) (bool, error) {
	if !semver.IsValid(version) {
		return false, fmt.Errorf("invalid snapshot version: %s", version)
	}
	if !semver.IsValid(current) {
		return false, fmt.Errorf("invalid reader version: %s", current)
	}
	return semver.Major(version) == semver.Major(current), nil
}

// WriteSnapshot encodes s as indented JSON.
func WriteSnapshot(w io.Writer, s Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot and rejects incompatible format versions.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	ok, err := IsCompatibleVersion(s.FormatVersion, FormatVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompatibleSnapshot, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: file is %s, reader requires %s.x.x",
			ErrIncompatibleSnapshot, s.FormatVersion, semver.Major(FormatVersion))
	}
	if s.Dataset == nil {
		return nil, fmt.Errorf("decode snapshot: missing dataset")
	}
	return &s, nil
}
