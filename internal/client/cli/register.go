package cli

import (
	"context"
	"fmt"

	"github.com/neonsoul/neonsoul/pkg/api"
)

// RunRegister выполняет команду register
func (c *Cli) RunRegister(ctx context.Context) error {
	fmt.Println("=== Registration ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirmPassword, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ %s\n", resp.Message)
	fmt.Println("Please run 'neonsoul login' to start using the service.")

	return nil
}
