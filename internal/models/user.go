package models

import (
	"strings"
	"time"
)

// Role enumerates the user roles recognised by the permission table.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEvaluator Role = "evaluator"
	RoleEvaluatee Role = "evaluatee"
)

// ParseRole normalises a raw role string into a known Role.
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleEvaluator:
		return RoleEvaluator, true
	case RoleEvaluatee:
		return RoleEvaluatee, true
	default:
		return "", false
	}
}

// User is a personnel account taking part in the evaluation workflow.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:100;uniqueIndex" json:"username"`
	NameTH    string    `gorm:"column:name_th;size:255;not null" json:"name_th"`
	Role      Role      `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
