package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Friendship statuses recorded in a FriendshipLog.
const (
	StatusAdded   = "added"
	StatusRemoved = "removed"
)

// Payment is an immutable record of a completed payment. The same instance
// is appended to both the actor's and the target's feed.
type Payment struct {
	Id     string
	Amount decimal.Decimal
	Actor  *User
	Target *User
	Note   string
}

func newPayment(amount decimal.Decimal, actor, target *User, note string) *Payment {
	return &Payment{
		Id:     uuid.New().String(),
		Amount: amount,
		Actor:  actor,
		Target: target,
		Note:   note,
	}
}

func (p *Payment) FeedMessage() string {
	return fmt.Sprintf("%s paid %s $%s for %s",
		p.Actor.Username(), p.Target.Username(), p.Amount.StringFixed(2), p.Note)
}

// FriendshipLog is an immutable record of a friendship change. One instance
// is shared by both participants' feeds.
type FriendshipLog struct {
	Id     string
	User1  *User
	User2  *User
	Status string
}

func newFriendshipLog(user1, user2 *User, status string) *FriendshipLog {
	return &FriendshipLog{
		Id:     uuid.New().String(),
		User1:  user1,
		User2:  user2,
		Status: status,
	}
}

func (f *FriendshipLog) FeedMessage() string {
	return fmt.Sprintf("%s %s %s as a friend.",
		f.User1.Username(), f.Status, f.User2.Username())
}
