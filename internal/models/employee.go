package models

import (
	"strings"
	"time"
)

type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// NormalizeEmployeeName turns free text into the employee identity key:
// trimmed, inner whitespace collapsed, upper case.
func NormalizeEmployeeName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}
