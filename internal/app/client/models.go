package client

import "time"

// Credentials carries a username and password for register and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type Profile struct {
	Username  string     `json:"username"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// NoteDraft is the payload for creating or updating a note.
type NoteDraft struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	ExpiryTime *time.Time `json:"expiryTime,omitempty"`
}

type Note struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	ExpiryTime *time.Time `json:"expiryTime,omitempty"`
	Version    int        `json:"version"`
}

type NotePage struct {
	Content       []Note `json:"content"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
}

type NoteVersion struct {
	ID            int64     `json:"id"`
	NoteID        int64     `json:"noteId"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	VersionNumber int       `json:"versionNumber"`
}

// apiError mirrors the server's error envelope.
type apiError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	ErrorText string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}
