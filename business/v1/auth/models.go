package auth

import "time"

// Profile is the public view of a user. The password hash never leaves the
// persistence layer.
type Profile struct {
	Id        uint64    `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email,omitempty" example:"alice@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type SignUp struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPair mirrors the json body returned by login and refresh
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
