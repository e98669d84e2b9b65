package models

type Book struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Author      string `json:"author" db:"author"`
	Category    string `json:"category" db:"category"`
	IsAvailable bool   `json:"is_available" db:"is_available"`
}

type CreateBookRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

type UpdateAvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}
