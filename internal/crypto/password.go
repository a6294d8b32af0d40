package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost фиксированный work factor для хеширования паролей
const bcryptCost = 10

// ErrPasswordMismatch возвращается, когда пароль не совпадает с хешем
var ErrPasswordMismatch = errors.New("invalid credentials")

// HashPassword хеширует пароль через bcrypt
// Соль генерируется библиотекой для каждого вызова
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword сравнивает пароль с сохраненным хешем
// Сравнение внутри bcrypt выполняется за константное время
func CheckPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}
