package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           string    `json:"id"`            // UUID пользователя
	Email        string    `json:"email"`         // уникальный email
	PasswordHash string    `json:"password_hash"` // bcrypt хеш пароля
	Avatar       *Avatar   `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"` // время создания
}

// Avatar представляет AI-аватар пользователя
// При обновлении перезаписывается целиком, без merge
type Avatar struct {
	Name        string `json:"name"`
	Personality string `json:"personality"`
}
