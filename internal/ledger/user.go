/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ledger

import (
	"context"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Usernames are 4-15 characters, alphanumeric plus underscore and hyphen.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{4,15}$`)

// User owns a balance, at most one credit card, a directed friend list and
// an append-only activity feed. All monetary state lives here; payments move
// funds between two User instances.
type User struct {
	username         string
	balance          decimal.Decimal
	creditCardNumber string
	friends          []*User
	feed             []FeedEntry
	processor        CardProcessor
}

// NewUser validates the username and returns a user with a zero balance and
// no card on file. The username is immutable once accepted.
func NewUser(username string, processor CardProcessor) (*User, error) {
	if !usernameRegex.MatchString(username) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}

	return &User{
		username:  username,
		balance:   decimal.Zero,
		processor: processor,
	}, nil
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Balance() decimal.Decimal {
	return u.balance
}

func (u *User) CreditCardNumber() string {
	return u.creditCardNumber
}

func (u *User) Friends() []*User {
	return u.friends
}

func (u *User) Feed() []FeedEntry {
	return u.feed
}

// AddToBalance parses amount as a decimal and credits the balance. This is
// the only direct way a balance increases; payment paths credit the target
// internally after their own validation.
func (u *User) AddToBalance(amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if !value.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, value.String())
	}

	u.balance = u.balance.Add(value)
	return nil
}

// credit adds an already-validated payment amount to the balance.
func (u *User) credit(amount decimal.Decimal) {
	u.balance = u.balance.Add(amount)
}

// AddCreditCard registers a card after vetting it with the card processor.
// A user holds at most one card ever; a second registration fails before the
// new number is even looked at.
func (u *User) AddCreditCard(cardNumber string) error {
	if u.creditCardNumber != "" {
		return ErrCreditCardAlreadySet
	}

	if err := u.processor.Validate(cardNumber); err != nil {
		return fmt.Errorf("unable to register card: %w", err)
	}

	u.creditCardNumber = cardNumber
	zap.L().Info("Credit card registered", zap.String("username", u.username))
	return nil
}

// Pay resolves a payment to target, drawing from the balance when it covers
// the amount and falling back to the card otherwise. The cutover is hard;
// there is no partial-balance split. On success the same Payment record is
// appended to both users' feeds.
func (u *User) Pay(ctx context.Context, target *User, amount, note string) (*Payment, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmountFormat, amount)
	}
	if !value.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, value.String())
	}

	var payment *Payment
	if u.balance.GreaterThanOrEqual(value) {
		payment, err = u.PayWithBalance(target, value, note)
	} else {
		payment, err = u.PayWithCard(ctx, target, value, note)
	}
	if err != nil {
		return nil, err
	}

	u.feed = append(u.feed, payment)
	target.feed = append(target.feed, payment)

	return payment, nil
}

// PayWithBalance debits the actor and credits the target. The debit/credit
// pair happens before the method returns; no intermediate state is
// observable by the caller. The SameUser and amount checks are repeated here
// because this is a public operation, reachable without going through Pay.
func (u *User) PayWithBalance(target *User, amount decimal.Decimal, note string) (*Payment, error) {
	if u.username == target.username {
		return nil, ErrSameUser
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String())
	}
	if u.balance.LessThan(amount) {
		return nil, fmt.Errorf("%w: balance %s, amount %s",
			ErrInsufficientBalance, u.balance.StringFixed(2), amount.StringFixed(2))
	}

	u.balance = u.balance.Sub(amount)
	payment := newPayment(amount, u, target, note)
	target.credit(amount)

	zap.L().Info("Payment processed",
		zap.String("payment_id", payment.Id),
		zap.String("path", "balance"),
		zap.String("actor", u.username),
		zap.String("target", target.username),
		zap.String("amount", amount.String()))

	return payment, nil
}

// PayWithCard charges the actor's card through the card processor and
// credits the target; the actor's balance is untouched. A charge failure
// propagates untouched and leaves both users unchanged.
func (u *User) PayWithCard(ctx context.Context, target *User, amount decimal.Decimal, note string) (*Payment, error) {
	if u.username == target.username {
		return nil, ErrSameUser
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String())
	}
	if u.creditCardNumber == "" {
		return nil, ErrNoCreditCard
	}

	if err := u.processor.Charge(ctx, u.creditCardNumber); err != nil {
		return nil, fmt.Errorf("unable to charge card: %w", err)
	}

	payment := newPayment(amount, u, target, note)
	target.credit(amount)

	zap.L().Info("Payment processed",
		zap.String("payment_id", payment.Id),
		zap.String("path", "card"),
		zap.String("actor", u.username),
		zap.String("target", target.username),
		zap.String("amount", amount.String()))

	return payment, nil
}

// AddFriend appends friend to the caller's friend list and mirrors a shared
// FriendshipLog into both feeds. Only the caller's list is updated; the
// reciprocal link is not created.
func (u *User) AddFriend(friend *User) {
	u.friends = append(u.friends, friend)

	log := newFriendshipLog(u, friend, StatusAdded)
	u.feed = append(u.feed, log)
	friend.feed = append(friend.feed, log)

	zap.L().Info("Friend added",
		zap.String("username", u.username),
		zap.String("friend", friend.username))
}

// RemoveFriend drops friend from the caller's friend list and mirrors a
// shared removed-status FriendshipLog into both feeds. The list update is a
// no-op when the friend was never linked.
func (u *User) RemoveFriend(friend *User) {
	for i, f := range u.friends {
		if f.username == friend.username {
			u.friends = append(u.friends[:i], u.friends[i+1:]...)
			break
		}
	}

	log := newFriendshipLog(u, friend, StatusRemoved)
	u.feed = append(u.feed, log)
	friend.feed = append(friend.feed, log)

	zap.L().Info("Friend removed",
		zap.String("username", u.username),
		zap.String("friend", friend.username))
}

// RetrieveFeed renders every feed entry in append order, which is
// chronological order since entries are appended at creation time.
func (u *User) RetrieveFeed() []string {
	messages := make([]string, 0, len(u.feed))
	for _, entry := range u.feed {
		messages = append(messages, entry.FeedMessage())
	}
	return messages
}
