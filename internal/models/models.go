package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type User struct {
	UserID         string `json:"userId" db:"user_id"`
	Name           string `json:"name" db:"name"`
	Username       string `json:"username" db:"username"`
	Email          string `json:"email" db:"email"`
	PasswordHash   string `json:"-" db:"password_hash"`
	ProfilePicture string `json:"profilePicture" db:"profile_picture"`
	Token          string `json:"-" db:"token"`
}

// PublicUser - поля пользователя, безопасные для выдачи в объединённых представлениях
type PublicUser struct {
	UserID         string `json:"userId" db:"user_id"`
	Name           string `json:"name" db:"name"`
	Username       string `json:"username" db:"username"`
	Email          string `json:"email" db:"email"`
	ProfilePicture string `json:"profilePicture" db:"profile_picture"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		UserID:         u.UserID,
		Name:           u.Name,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}

type Education struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
}

type Work struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Years    string `json:"years"`
}

// EducationList и WorkList хранятся в JSONB колонках
type EducationList []Education

type WorkList []Work

func (e EducationList) Value() (driver.Value, error) {
	if e == nil {
		e = EducationList{}
	}
	return json.Marshal(e)
}

func (e *EducationList) Scan(src interface{}) error {
	return scanJSON(src, e)
}

func (w WorkList) Value() (driver.Value, error) {
	if w == nil {
		w = WorkList{}
	}
	return json.Marshal(w)
}

func (w *WorkList) Scan(src interface{}) error {
	return scanJSON(src, w)
}

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("неподдерживаемый тип для JSONB: %T", src)
	}
}

type Profile struct {
	ProfileID       string        `json:"profileId" db:"profile_id"`
	UserID          string        `json:"userId" db:"user_id"`
	Bio             string        `json:"bio" db:"bio"`
	CurrentPosition string        `json:"currentPosition" db:"current_position"`
	Education       EducationList `json:"education" db:"education"`
	PastWork        WorkList      `json:"pastWork" db:"past_work"`
}

// ProfileWithUser - профиль, объединённый с публичными полями владельца
type ProfileWithUser struct {
	Profile
	User PublicUser `json:"user" db:"user"`
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Body      string    `json:"body" db:"body"`
	Media     string    `json:"media" db:"media"`
	FileType  string    `json:"fileType" db:"file_type"`
	Likes     int       `json:"likes" db:"likes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// PostWithAuthor - пост с публичными полями автора и количеством комментариев
type PostWithAuthor struct {
	Post
	Author        PublicUser `json:"author" db:"author"`
	CommentsCount int        `json:"commentsCount" db:"-"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CommentWithAuthor struct {
	Comment
	Author PublicUser `json:"author" db:"author"`
}

// ConnectionRequest - направленное ребро от отправителя к получателю.
// StatusAccepted: NULL - pending, true - accepted, false - rejected.
type ConnectionRequest struct {
	RequestID      string       `json:"requestId" db:"request_id"`
	UserID         string       `json:"userId" db:"user_id"`
	ConnectionID   string       `json:"connectionId" db:"connection_id"`
	StatusAccepted sql.NullBool `json:"-" db:"status_accepted"`
	CreatedAt      time.Time    `json:"createdAt" db:"created_at"`
}

// ConnectionRequestWithUser - входящая заявка с публичными полями отправителя
type ConnectionRequestWithUser struct {
	ConnectionRequest
	Requester PublicUser `json:"user" db:"requester"`
}

// Connection - нормализованное представление принятой связи:
// одно и то же ребро независимо от того, кем был вызывающий
type Connection struct {
	RequestID   string     `json:"requestId"`
	User        PublicUser `json:"user"`
	ConnectedAt time.Time  `json:"connectedAt"`
}
