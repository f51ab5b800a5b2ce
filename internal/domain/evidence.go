package domain

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// MemoryImage is one captured RAM image in the chain-of-custody record.
// Records are immutable once written; the evidence store only appends.
type MemoryImage struct {
	ImageID     string    `json:"image_id"`
	SHA256      string    `json:"sha256"`
	RecoveredBy string    `json:"recovered_by"`
	CapturedAt  time.Time `json:"captured_at"`
	CaseID      string    `json:"case_id"`
	Path        string    `json:"path"`
	SizeBytes   int64     `json:"size_bytes"`
}

// Timestamp layouts accepted when reading records. New records are written
// as RFC 3339; the predecessor format recorded naive ISO-8601 with no zone,
// which those files must keep parsing through the migration path.
var capturedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// UnmarshalJSON decodes a record, tolerating legacy timestamp forms.
func (m *MemoryImage) UnmarshalJSON(b []byte) error {
	type alias MemoryImage
	aux := struct {
		*alias
		CapturedAt string `json:"captured_at"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	for _, layout := range capturedAtLayouts {
		if ts, err := time.Parse(layout, aux.CapturedAt); err == nil {
			m.CapturedAt = ts.UTC()
			return nil
		}
	}
	return errors.Errorf("unrecognized captured_at timestamp %q", aux.CapturedAt)
}
