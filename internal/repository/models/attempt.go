package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AttemptRow is one row of the ATTEMPTS table as read back. ConceptTags stays raw so the
// repository can apply the tag fallback rules and count fallbacks.
type AttemptRow struct {
	StudentID    int64           `db:"STUDENT_ID"`    // Student identifier, many rows per student
	ConceptTags  sql.NullString  `db:"CONCEPT_TAGS"`  // Serialized tag list (JSON or Python literal)
	Correct      Flag            `db:"CORRECT"`       // 0/1 outcome
	ResponseTime sql.NullFloat64 `db:"RESPONSE_TIME"` // Seconds
}

// AttemptRecord is the shape written by the importer.
type AttemptRecord struct {
	StudentID    int64   `db:"STUDENT_ID"`
	ConceptTags  TagList `db:"CONCEPT_TAGS"`
	Correct      Flag    `db:"CORRECT"`
	ResponseTime float64 `db:"RESPONSE_TIME"`
}

// TagList stores concept tags as a JSON array string.
type TagList []string

// Value implements the driver.Valuer interface
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		// nil is stored as an empty JSON array so reads never see NULL
		return "[]", nil
	}
	jsonData, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Flag is a boolean stored as a 0/1 number. Oracle has no boolean column type.
type Flag bool

// Value implements the driver.Valuer interface
func (f Flag) Value() (driver.Value, error) {
	if f {
		return int64(1), nil
	}
	return int64(0), nil
}

// Scan implements the sql.Scanner interface
func (f *Flag) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return fmt.Errorf("Flag Scan: NULL is not a valid outcome")
	case bool:
		*f = Flag(v)
		return nil
	case int64:
		return f.fromNumber(float64(v))
	case float64:
		return f.fromNumber(v)
	case []byte:
		return f.fromString(string(v))
	case string:
		return f.fromString(v)
	default:
		return fmt.Errorf("Flag Scan: unsupported type %T", value)
	}
}

func (f *Flag) fromNumber(n float64) error {
	switch n {
	case 0:
		*f = false
	case 1:
		*f = true
	default:
		return fmt.Errorf("Flag Scan: %v is not 0 or 1", n)
	}
	return nil
}

func (f *Flag) fromString(s string) error {
	b, err := ParseFlag(s)
	if err != nil {
		return fmt.Errorf("Flag Scan: %w", err)
	}
	*f = Flag(b)
	return nil
}

// ParseFlag accepts true/false spellings as well as 0/1 and 0.0/1.0.
func ParseFlag(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		switch n {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	}
	return false, fmt.Errorf("%q is not a boolean outcome", s)
}
