package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/neonsoul/neonsoul/internal/client/storage"
	"github.com/neonsoul/neonsoul/pkg/api"
)

// RunLogin выполняет команду login и сохраняет сессию локально
func (c *Cli) RunLogin(ctx context.Context) error {
	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	session := &storage.Session{
		Email:     email,
		Token:     resp.Token,
		CreatedAt: time.Now(),
	}

	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println("✓ Logged in successfully")

	return nil
}
