package listing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gavelapp/goapi/domain"
)

// Bid is a single accepted price proposal. It is owned by its listing and
// immutable once appended to the bidders sequence.
type Bid struct {
	Bidder    domain.UserId `json:"bidder" bson:"bidder"`
	Amount    float64       `json:"amount" bson:"amount"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}

// ValidateBid decides whether a proposed bid is acceptable against the
// listing's current state. Rules apply in order and the first failing rule
// wins; there are no side effects on rejection. The clock, not the stored
// status, is authoritative for expiry. On acceptance the parsed amount is
// returned and the caller performs the atomic update.
func ValidateBid(l *Listing, rawAmount string, bidder domain.UserId, now time.Time) (float64, error) {
	if bidder.IsEmpty() {
		return 0, domain.ErrUnauthenticated
	}
	if l.Status.IsTerminal() {
		return 0, domain.ErrAlreadyFinalized
	}
	if IsExpired(l.ExpireAt, now) {
		return 0, domain.ErrExpired
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil || amount.IsNegative() {
		return 0, domain.ErrInvalidInput
	}
	proposed := amount.InexactFloat64()
	if proposed <= l.FinalPrice {
		return 0, domain.ErrBidTooLow
	}
	if bidder.Equals(l.Lister) {
		return 0, domain.ErrSelfBid
	}
	return proposed, nil
}

// ValidateFinalize decides whether requester may move an expired listing to
// the given terminal status. disputed -> disputed is an idempotent no-op and
// reports ok without a transition.
func ValidateFinalize(l *Listing, requester domain.UserId, isAdmin bool, target Status, now time.Time) error {
	if requester.IsEmpty() {
		return domain.ErrUnauthenticated
	}
	if target != StatusSold && target != StatusDisputed {
		return domain.ErrBadParamInput
	}
	if l.Status == StatusDisputed && target == StatusDisputed {
		return nil
	}
	if l.Status.IsTerminal() {
		return domain.ErrAlreadyFinalized
	}
	if !IsExpired(l.ExpireAt, now) {
		return domain.ErrForbidden
	}
	winner, ok := l.HighestBidder()
	if !ok {
		return domain.ErrNoWinner
	}
	if !isAdmin && !requester.Equals(winner) {
		return domain.ErrForbidden
	}
	return nil
}
