package handlers

import (
	"time"

	"postboard/models"
)

// PostInfo is the wire representation of a post
type PostInfo struct {
	ID              uint64 `json:"id"`
	Username        string `json:"username"`
	CreatedDatetime string `json:"created_datetime"`
	Title           string `json:"title"`
	Content         string `json:"content"`
}

type UserInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GoogleUserInfo adds the profile names filled in from the Google token
type GoogleUserInfo struct {
	UserInfo
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// TokenResponse is the body of every successful sign-in/register call
type TokenResponse struct {
	Refresh string      `json:"refresh"`
	Access  string      `json:"access"`
	User    interface{} `json:"user"`
}

func postInfo(p *models.Post) PostInfo {
	return PostInfo{
		ID:              p.ID,
		Username:        p.Username,
		CreatedDatetime: time.Unix(p.CreatedAt, 0).UTC().Format(time.RFC3339),
		Title:           p.Title,
		Content:         p.Content,
	}
}

func userInfo(u *models.User) UserInfo {
	return UserInfo{ID: u.ID, Username: u.Username, Email: u.Email}
}
