package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONValue stores an arbitrary JSON document as JSONB.
type JSONValue json.RawMessage

// Value implements the driver.Valuer interface
func (v JSONValue) Value() (driver.Value, error) {
	if len(v) == 0 {
		return nil, nil
	}
	return string(v), nil
}

// Scan implements the sql.Scanner interface
func (v *JSONValue) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch data := value.(type) {
	case []byte:
		*v = append((*v)[0:0], data...)
	case string:
		*v = JSONValue(data)
	default:
		return fmt.Errorf("failed to unmarshal JSONValue: unsupported type %T", value)
	}
	return nil
}

func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

func (v *JSONValue) UnmarshalJSON(data []byte) error {
	*v = append((*v)[0:0], data...)
	return nil
}

// Setting is a keyed application setting with a JSON value, e.g.
// {"setting_key": "loyalty_conversion_rate", "setting_value": {"rate": 0.1}}.
type Setting struct {
	SettingKey   string    `json:"setting_key" gorm:"primaryKey;not null"`
	SettingValue JSONValue `json:"setting_value" gorm:"type:jsonb;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
