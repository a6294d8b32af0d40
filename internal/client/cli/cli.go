package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/neonsoul/neonsoul/internal/client/api"
	"github.com/neonsoul/neonsoul/internal/client/storage"
)

// Cli связывает API клиент и локальное хранилище сессии
type Cli struct {
	apiClient *api.Client
	sessions  storage.SessionStorage
}

// New создает новый CLI
func New(apiClient *api.Client, sessions storage.SessionStorage) *Cli {
	return &Cli{
		apiClient: apiClient,
		sessions:  sessions,
	}
}

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println("NEONSOUL Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  neonsoul [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version                    Show version information")
	fmt.Println("  --server URL                 Server URL (default http://localhost:5000)")
	fmt.Println("  --db PATH                    Path to local database")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                     Create a new account")
	fmt.Println("  login                        Log in and store the session")
	fmt.Println("  logout                       Remove the stored session")
	fmt.Println("  status                       Show the current session")
	fmt.Println("  avatar NAME PERSONALITY      Create or replace your AI avatar")
	fmt.Println("  feed                         Show the generated NEONSOUL feed")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без эха в терминале
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}

	return string(passwordBytes), nil
}
