// Package cmd implements the budgetbot CLI: a console REPL, one-shot
// command execution, the Telegram bot, and documentation.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/budgetbot"
	"github.com/etnz/budgetbot/kvstore"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Register the subcommands. A main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&replCmd{}, "budget")
	c.Register(&execCmd{}, "budget")
	c.Register(&botCmd{}, "transport")
	c.Register(&assistCmd{}, "assist")
	c.Register(&topicCmd{}, "documentation")
}

// Config is the application configuration, read from the environment with
// the BUDGETBOT_ prefix, with a .env file honored when present.
type Config struct {
	Store         string // memory, file or redis
	Dir           string // file store root
	RedisAddr     string
	Currency      string
	TelegramToken string
}

// LoadConfig reads the configuration. Every value has a default except the
// Telegram token, which only the bot command requires.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("store", "file")
	v.SetDefault("dir", filepath.Join(os.Getenv("HOME"), ".budgetbot"))
	v.SetDefault("redis_addr", "127.0.0.1:6379")
	v.SetDefault("currency", budget.DefaultCurrency)
	v.SetDefault("telegram_token", "")

	v.SetEnvPrefix("BUDGETBOT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return Config{
		Store:         v.GetString("store"),
		Dir:           v.GetString("dir"),
		RedisAddr:     v.GetString("redis_addr"),
		Currency:      v.GetString("currency"),
		TelegramToken: v.GetString("telegram_token"),
	}, nil
}

// OpenStore builds the configured key-value store. The returned close
// function is never nil.
func OpenStore(ctx context.Context, cfg Config) (kvstore.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Store {
	case "memory":
		return kvstore.NewMemory(), noop, nil
	case "file":
		store, err := kvstore.NewFile(cfg.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open file store in %q: %w", cfg.Dir, err)
		}
		return store, noop, nil
	case "redis":
		store, err := kvstore.NewRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot reach redis at %q: %w", cfg.RedisAddr, err)
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}

// OpenDispatcher loads the configuration and builds the full pipeline.
func OpenDispatcher(ctx context.Context) (*budget.Dispatcher, func() error, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	ledger := budget.NewLedger(store, cfg.Currency)
	return budget.NewDispatcher(ledger, nil), closeStore, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
