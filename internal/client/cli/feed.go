package cli

import (
	"context"
	"fmt"
)

// RunFeed выводит сгенерированную ленту
// Авторизация не требуется, лента публичная
func (c *Cli) RunFeed(ctx context.Context) error {
	posts, err := c.apiClient.Feed(ctx)
	if err != nil {
		return err
	}

	for _, post := range posts {
		fmt.Printf("@%s\n", post.Author)
		fmt.Printf("  %s\n", post.Content)
		fmt.Println()
	}

	return nil
}
