package models

import "time"

// 회원 사용자 모델
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"imageUrl"`
	PasswordHash string    `json:"-"`
	Industry     string    `json:"industry"`
	Experience   int       `json:"experience"`
	Bio          string    `json:"bio"`
	Skills       []string  `json:"skills"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// 온보딩 시 입력받는 경력 프로필
type UserProfile struct {
	Industry   string   `json:"industry"`
	Experience int      `json:"experience"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
}

func (u User) IsOnboarded() bool {
	return u.Industry != ""
}
