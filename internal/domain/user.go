package domain

import "time"

type UserId = string

// User is the persisted account record. PassHash never leaves the service
// layer; API responses use UserView instead.
type User struct {
	Id        UserId
	Name      string
	Email     string
	PassHash  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserView is the client-facing projection of a User.
type UserView struct {
	Id    UserId `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) View() UserView {
	return UserView{Id: u.Id, Name: u.Name, Email: u.Email}
}
