package venmo

import (
	"fmt"

	"mini-venmo-go/internal/ledger"

	"go.uber.org/zap"
)

// App composes the ledger and the card processor into the user-facing
// application: a user factory plus feed rendering.
type App struct {
	processor ledger.CardProcessor
}

func NewApp(processor ledger.CardProcessor) *App {
	return &App{processor: processor}
}

// CreateUser builds a user with a seeded balance and a registered card.
// The first failing step aborts the whole construction.
func (a *App) CreateUser(username, balance, cardNumber string) (*ledger.User, error) {
	user, err := ledger.NewUser(username, a.processor)
	if err != nil {
		return nil, fmt.Errorf("unable to create user: %w", err)
	}

	if err := user.AddToBalance(balance); err != nil {
		return nil, fmt.Errorf("unable to seed balance for %s: %w", username, err)
	}

	if err := user.AddCreditCard(cardNumber); err != nil {
		return nil, fmt.Errorf("unable to register card for %s: %w", username, err)
	}

	zap.L().Info("User created",
		zap.String("username", username),
		zap.String("balance", user.Balance().String()))

	return user, nil
}

// RenderFeed prints a retrieved feed line by line.
func (a *App) RenderFeed(feed []string) {
	for _, message := range feed {
		fmt.Println(message)
	}
}
