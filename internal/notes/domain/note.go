package domain

import "time"

// Note is a message owned by a single user.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
