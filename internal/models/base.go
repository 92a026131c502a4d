// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
)

// StringSlice is a JSONB column holding a list of names (squads).
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

// Scan unmarshals a JSONB column into the slice.
func (s *StringSlice) Scan(src interface{}) error {
	return scanJSON("StringSlice", src, s)
}

// InningsData is the JSONB column holding one innings' over ledger and
// batting/bowling tables.
type InningsData scoring.Innings

// Innings exposes the column as the engine type.
func (d *InningsData) Innings() *scoring.Innings {
	return (*scoring.Innings)(d)
}

func (d InningsData) Value() (driver.Value, error) {
	b, err := json.Marshal(scoring.Innings(d))
	return string(b), err
}

// Scan unmarshals JSONB bytes into the innings.
func (d *InningsData) Scan(src interface{}) error {
	return scanJSON("InningsData", src, (*scoring.Innings)(d))
}

func (d InningsData) MarshalJSON() ([]byte, error) {
	return json.Marshal(scoring.Innings(d))
}

func (d *InningsData) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, (*scoring.Innings)(d))
}

func scanJSON(name string, src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("%s: expected []byte, got %T", name, src)
	}
}
