package models

import (
	"encoding/json"
	"time"
)

// EnrolledIdentity holds the single active embedding for an employee.
// Re-enrollment replaces the row; there is never more than one embedding
// per employee.
type EnrolledIdentity struct {
	EmployeeID string          `gorm:"primaryKey" json:"employee_id"`
	Embedding  json.RawMessage `gorm:"type:json" json:"-"`
	Vector     []float64       `gorm:"-" json:"embedding"`
	EnrolledAt time.Time       `json:"enrolled_at"`
}

func (EnrolledIdentity) TableName() string {
	return "enrolled_identities"
}

// EncodeVector serializes Vector into the JSON column before a write.
func (i *EnrolledIdentity) EncodeVector() error {
	raw, err := json.Marshal(i.Vector)
	if err != nil {
		return err
	}
	i.Embedding = raw
	return nil
}

// DecodeVector populates Vector from the JSON column after a read.
func (i *EnrolledIdentity) DecodeVector() error {
	if len(i.Embedding) == 0 {
		i.Vector = nil
		return nil
	}
	return json.Unmarshal(i.Embedding, &i.Vector)
}
