package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/neonsoul/neonsoul/internal/client/storage"
)

// RunStatus показывает текущую сессию
func (c *Cli) RunStatus(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			fmt.Println("Not logged in")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	fmt.Printf("Logged in as: %s\n", session.Email)
	fmt.Printf("Since:        %s\n", session.CreatedAt.Format("2006-01-02 15:04:05"))

	return nil
}
