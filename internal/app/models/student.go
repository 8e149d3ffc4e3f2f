package models

// Student defines a registered student as persisted in students.csv.
type Student struct {
	ID   string `json:"studentId" example:"20230042"` // Student's unique identifier/student number
	Name string `json:"name" example:"Jane Doe"`      // Display name, matched on login
}
