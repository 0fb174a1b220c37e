package ledger

import (
	"context"
	"errors"
)

// Sentinel errors shared by every payment path. Callers classify with
// errors.Is; the variants mirror the validation order in the User methods.
var (
	ErrInvalidUsername      = errors.New("username not valid")
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrInvalidAmountFormat  = errors.New("amount must be a valid number")
	ErrSameUser             = errors.New("user cannot pay themselves")
	ErrInsufficientBalance  = errors.New("insufficient balance to make the payment")
	ErrNoCreditCard         = errors.New("must have a credit card to make a payment")
	ErrInvalidCreditCard    = errors.New("invalid credit card number")
	ErrCreditCardAlreadySet = errors.New("only one credit card per user")
)

// CardProcessor defines the contract for the external card network. The
// ledger only needs two things from it: vet a card number at registration
// time and charge a card on the card payment path. A Charge either completes
// or fails; no retry policy is applied here.
type CardProcessor interface {
	Validate(cardNumber string) error
	Charge(ctx context.Context, cardNumber string) error
}

// FeedEntry is any record that can appear in a user's activity feed.
type FeedEntry interface {
	// FeedMessage returns the human-readable line for this entry.
	FeedMessage() string
}
