package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/budgetbot"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

type botCmd struct {
	debug bool
}

func (*botCmd) Name() string     { return "bot" }
func (*botCmd) Synopsis() string { return "run the Telegram bot" }
func (*botCmd) Usage() string {
	return `bot [-debug]

Poll Telegram for messages and answer them as budget commands. Requires
BUDGETBOT_TELEGRAM_TOKEN.
`
}

func (c *botCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.debug, "debug", false, "log every Telegram exchange")
}

func (c *botCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if cfg.TelegramToken == "" {
		fmt.Fprintln(os.Stderr, "Error: BUDGETBOT_TELEGRAM_TOKEN is not set")
		return subcommands.ExitFailure
	}

	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()
	dispatcher := budget.NewDispatcher(budget.NewLedger(store, cfg.Currency), nil)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to Telegram:", err)
		return subcommands.ExitFailure
	}
	bot.Debug = c.debug
	log.Printf("bot authorized as %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	err = poll(ctx, updates, bot.StopReceivingUpdates, func(msg *tgbotapi.Message) {
		c.answer(ctx, dispatcher, bot, msg)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// poll consumes updates until the channel closes or ctx is cancelled. stop is
// called in both cases so neither goroutine outlives the other.
func poll(ctx context.Context, updates <-chan tgbotapi.Update, stop func(), handle func(msg *tgbotapi.Message)) error {
	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		select {
		case <-ctx.Done():
		case <-done:
		}
		stop()
		return nil
	})
	g.Go(func() error {
		defer close(done)
		// one update at a time, the ledger expects no concurrent writers
		for update := range updates {
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			handle(update.Message)
		}
		return nil
	})
	return g.Wait()
}

func (c *botCmd) answer(ctx context.Context, dispatcher *budget.Dispatcher, bot *tgbotapi.BotAPI, msg *tgbotapi.Message) {
	messages, err := dispatcher.Process(ctx, msg.Text, msg.Time())
	if err != nil {
		log.Printf("command %q failed: %v", msg.Text, err)
		messages = []budget.Message{budget.Textf("Something went wrong, try again later.")}
	}
	for _, m := range messages {
		var reply tgbotapi.Chattable
		if m.IsImage() {
			photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FilePath(m.Image))
			reply = photo
		} else {
			reply = tgbotapi.NewMessage(msg.Chat.ID, m.Text)
		}
		if _, err := bot.Send(reply); err != nil {
			log.Printf("cannot send reply: %v", err)
		}
		if m.IsImage() {
			os.Remove(m.Image)
		}
	}
}
