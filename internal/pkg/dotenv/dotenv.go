package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Load подгружает .env (если есть) и применяет флаги командной строки
// поверх окружения. Уже заданные переменные окружения .env не перетирает.
func Load(args []string) error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	flags := pflag.NewFlagSet("ledger", pflag.ContinueOnError)
	portFlag := flags.String("port", "", "Server port (overrides PORT environment variable)")
	storageFlag := flags.String("storage", "", "Storage driver: postgres or memory (overrides STORAGE_DRIVER)")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":           *portFlag,
		"STORAGE_DRIVER": *storageFlag,
	}
	for key, val := range overrides {
		if val == "" {
			continue
		}
		if err := os.Setenv(key, val); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
