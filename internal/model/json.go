package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonb column support. Each type serializes itself as JSON for postgres and
// scans back from []byte or string.

// StringSlice is a []string stored as a jsonb array.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func (StringSlice) GormDataType() string {
	return "jsonb"
}

// FewShotExamples is a list of worked examples stored as a jsonb array.
type FewShotExamples []FewShotExample

func (f FewShotExamples) Value() (driver.Value, error) {
	if len(f) == 0 {
		return nil, nil
	}
	return json.Marshal(f)
}

func (f *FewShotExamples) Scan(value interface{}) error {
	return scanJSON(value, f)
}

func (FewShotExamples) GormDataType() string {
	return "jsonb"
}

// JSONMap is a free-form object column, used for metadata passthrough fields.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

func (JSONMap) GormDataType() string {
	return "jsonb"
}

func (r *Rubric) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func (r *Rubric) Scan(value interface{}) error {
	return scanJSON(value, r)
}

func (Rubric) GormDataType() string {
	return "jsonb"
}

func (c *Creator) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

func (c *Creator) Scan(value interface{}) error {
	return scanJSON(value, c)
}

func (Creator) GormDataType() string {
	return "jsonb"
}

func scanJSON(value, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
