package domain

import "time"

// Course is owned by exactly one User; UserID references that owner.
type Course struct {
	ID              int64
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
	UserID          int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Owner           *User
}
