package note

import (
	"time"

	"notestash/internal/domain/note"
)

type CreateInput struct {
	Body NoteRequest
}

type GetInput struct {
	ID int64 `path:"id" doc:"Note identifier"`
}

type ListInput struct {
	Page int `query:"page" default:"0" doc:"Zero based page index"`
	Size int `query:"size" default:"10" doc:"Page size, capped at 100"`
}

type UpdateInput struct {
	ID   int64 `path:"id" doc:"Note identifier"`
	Body NoteRequest
}

type DeleteInput struct {
	ID int64 `path:"id" doc:"Note identifier"`
}

type VersionsInput struct {
	ID int64 `path:"id" doc:"Note identifier"`
}

type NoteRequest struct {
	Title      string     `json:"title" example:"Shopping list" doc:"Non-empty title, at most 255 characters"`
	Content    string     `json:"content" example:"milk, eggs" doc:"Note body, must not be empty"`
	ExpiryTime *time.Time `json:"expiryTime,omitempty" doc:"Optional moment after which the note disappears"`
}

type NoteOutput struct {
	Body NoteResponse
}

type NoteResponse struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	ExpiryTime *time.Time `json:"expiryTime,omitempty"`
	Version    int        `json:"version"`
}

type PageOutput struct {
	Body PageResponse
}

type PageResponse struct {
	Content       []NoteResponse `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
}

type VersionsOutput struct {
	Body []VersionResponse
}

type VersionResponse struct {
	ID            int64     `json:"id"`
	NoteID        int64     `json:"noteId"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"createdAt"`
	VersionNumber int       `json:"versionNumber"`
}

func toNoteResponse(n note.Note) NoteResponse {
	return NoteResponse{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		ExpiryTime: n.ExpiryTime,
		Version:    n.Version,
	}
}

func toVersionResponse(v note.Version) VersionResponse {
	return VersionResponse{
		ID:            v.ID,
		NoteID:        v.NoteID,
		Title:         v.Title,
		Content:       v.Content,
		CreatedAt:     v.CreatedAt,
		VersionNumber: v.VersionNumber,
	}
}
