package user

import "time"

type User struct {
	Id           uint64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
}
