package note

import "time"

type Note struct {
	ID         int64
	OwnerID    int64
	Title      string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ExpiryTime *time.Time
	Version    int
}

// Version is an immutable snapshot of a note's state taken just before an
// update was applied, stamped with the pre-update version number.
type Version struct {
	ID            int64
	NoteID        int64
	Title         string
	Content       string
	VersionNumber int
	CreatedAt     time.Time
}

type Page struct {
	Content       []Note
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// Active reports whether the note is visible at the given instant, i.e. has
// no expiry or an expiry still in the future.
func (n Note) Active(now time.Time) bool {
	return n.ExpiryTime == nil || n.ExpiryTime.After(now)
}
