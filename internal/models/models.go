// Package models defines the core domain types for taskmenu.
package models

// Task represents one to-do item. Its only identity is its position in the
// store; Done is the only field that changes after creation.
type Task struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	DueDate     string `json:"due_date"` // free-form, never parsed
	Done        bool   `json:"done"`
}

// NewTask creates a pending task.
func NewTask(name, description, dueDate string) Task {
	return Task{
		Name:        name,
		Description: description,
		DueDate:     dueDate,
	}
}
