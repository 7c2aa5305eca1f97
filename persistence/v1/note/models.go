package note

import "time"

const noteKey = "notes.%d"

type Note struct {
	Id        uint64
	UserId    uint64
	Title     string
	Content   string
	UpdatedAt time.Time
	CreatedAt time.Time
}

type NewNote struct {
	UserId  uint64
	Title   string
	Content string
}
