package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/neonsoul/neonsoul/internal/client/storage"
)

// RunLogout удаляет локальную сессию
// Серверная часть stateless: токен просто перестает использоваться
func (c *Cli) RunLogout(ctx context.Context) error {
	if err := c.sessions.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			fmt.Println("Not logged in")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	fmt.Println("✓ Logged out")

	return nil
}
