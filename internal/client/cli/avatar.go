package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/neonsoul/neonsoul/internal/client/storage"
	"github.com/neonsoul/neonsoul/pkg/api"
)

// RunAvatar создает или перезаписывает аватар текущего пользователя
// args: NAME PERSONALITY
func (c *Cli) RunAvatar(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: neonsoul avatar NAME PERSONALITY")
	}

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("not logged in. Please run 'neonsoul login' first")
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	resp, err := c.apiClient.CreateAvatar(ctx, api.AvatarRequest{
		Token:       session.Token,
		Name:        args[0],
		Personality: args[1],
	})
	if err != nil {
		return err
	}

	fmt.Println("✓ Avatar saved")
	fmt.Printf("Name:        %s\n", resp.Name)
	fmt.Printf("Personality: %s\n", resp.Personality)

	return nil
}
