package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gavelapp/goapi/domain"
)

func baseListing(now time.Time) *Listing {
	return &Listing{
		Id:         "l-1",
		Lister:     "seller",
		StartPrice: 100,
		FinalPrice: 100,
		ExpireAt:   now.Add(time.Hour),
		Status:     StatusActive,
	}
}

func TestValidateBid(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	amount, err := ValidateBid(baseListing(now), "150.5", "buyer", now)
	assert.NoError(t, err)
	assert.Equal(t, 150.5, amount)
}

func TestValidateBidRuleOrder(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// finalized wins over expired
	l := baseListing(now)
	l.Status = StatusSold
	l.ExpireAt = now.Add(-time.Hour)
	_, err := ValidateBid(l, "150", "buyer", now)
	assert.Equal(t, domain.ErrAlreadyFinalized, err)

	// expired wins over malformed amount
	l = baseListing(now)
	l.ExpireAt = now.Add(-time.Hour)
	_, err = ValidateBid(l, "abc", "buyer", now)
	assert.Equal(t, domain.ErrExpired, err)

	// too-low wins over self bid
	l = baseListing(now)
	_, err = ValidateBid(l, "50", "seller", now)
	assert.Equal(t, domain.ErrBidTooLow, err)

	// authentication is checked before anything else
	l = baseListing(now)
	l.Status = StatusSold
	_, err = ValidateBid(l, "150", "", now)
	assert.Equal(t, domain.ErrUnauthenticated, err)
}

func TestValidateBidRejections(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		rawAmount string
		bidder    domain.UserId
		want      error
	}{
		{"equal to current price", "100", "buyer", domain.ErrBidTooLow},
		{"below current price", "99.999", "buyer", domain.ErrBidTooLow},
		{"negative", "-10", "buyer", domain.ErrInvalidInput},
		{"not a number", "1,000", "buyer", domain.ErrInvalidInput},
		{"empty", "", "buyer", domain.ErrInvalidInput},
		{"self bid", "150", "seller", domain.ErrSelfBid},
		{"self bid different case", "150", "SELLER", domain.ErrSelfBid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateBid(baseListing(now), tc.rawAmount, tc.bidder, now)
			assert.Equal(t, tc.want, err)
		})
	}
}

func TestValidateFinalize(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	expired := func() *Listing {
		l := baseListing(now)
		l.ExpireAt = now.Add(-time.Minute)
		l.FinalPrice = 150
		l.Bidders = []Bid{
			{Bidder: "early-bird", Amount: 120},
			{Bidder: "winner", Amount: 150},
		}
		return l
	}

	assert.NoError(t, ValidateFinalize(expired(), "winner", false, StatusSold, now))
	assert.NoError(t, ValidateFinalize(expired(), "admin", true, StatusDisputed, now))

	assert.Equal(t, domain.ErrForbidden, ValidateFinalize(expired(), "early-bird", false, StatusSold, now))
	assert.Equal(t, domain.ErrUnauthenticated, ValidateFinalize(expired(), "", false, StatusSold, now))
	assert.Equal(t, domain.ErrBadParamInput, ValidateFinalize(expired(), "winner", false, StatusActive, now))
	assert.Equal(t, domain.ErrBadParamInput, ValidateFinalize(expired(), "winner", false, Status("expired"), now))

	active := expired()
	active.ExpireAt = now.Add(time.Hour)
	assert.Equal(t, domain.ErrForbidden, ValidateFinalize(active, "winner", false, StatusSold, now))

	unbid := expired()
	unbid.Bidders = nil
	assert.Equal(t, domain.ErrNoWinner, ValidateFinalize(unbid, "winner", true, StatusSold, now))

	sold := expired()
	sold.Status = StatusSold
	assert.Equal(t, domain.ErrAlreadyFinalized, ValidateFinalize(sold, "winner", false, StatusSold, now))

	disputed := expired()
	disputed.Status = StatusDisputed
	assert.NoError(t, ValidateFinalize(disputed, "winner", false, StatusDisputed, now))
	assert.Equal(t, domain.ErrAlreadyFinalized, ValidateFinalize(disputed, "winner", false, StatusSold, now))
}

func TestHighestBidder(t *testing.T) {
	l := &Listing{}
	_, ok := l.HighestBidder()
	assert.False(t, ok)
	assert.False(t, l.HasBids())

	l.Bidders = []Bid{
		{Bidder: "first", Amount: 110},
		{Bidder: "second", Amount: 120},
	}
	winner, ok := l.HighestBidder()
	assert.True(t, ok)
	assert.Equal(t, domain.UserId("second"), winner)
}
