package model

import "time"

const DefaultTaskCategory = "General"

type Task struct {
	ID          int64
	Title       string
	Description string
	Category    string
	IsCompleted bool
	CreatedAt   time.Time
}
