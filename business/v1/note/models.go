package note

import "time"

type Note struct {
	Id         uint64    `json:"id" example:"1"`
	Title      string    `json:"title" example:"my note"`
	Content    string    `json:"content" example:"my note text"`
	SharedWith []uint64  `json:"sharedWith" example:"2,3"`
	UpdatedAt  time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt  time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type NewNote struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNote carries a partial update; a nil field keeps the stored value
type UpdateNote struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Event is the envelope consumed from the messaging queue
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// EventNote is the payload of a "create" Event. The queue is an internal
// surface, so the owner travels in the payload instead of a token.
type EventNote struct {
	UserId  uint64 `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
