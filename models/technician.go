package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Specialties stores a technician's skill list as JSONB.
type Specialties []string

// Value implements the driver.Valuer interface
func (s Specialties) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *Specialties) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal Specialties: unsupported type %T", value)
	}

	return json.Unmarshal(data, s)
}

type Technician struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"not null"`
	Specialties Specialties `json:"specialties" gorm:"type:jsonb"`
	UserID      *string     `json:"user_id"`
	User        *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ImageURL    string      `json:"image_url"`
	IsAvailable bool        `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
