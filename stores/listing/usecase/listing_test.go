package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/base/ptr"
	"github.com/gavelapp/goapi/domain"
	"github.com/gavelapp/goapi/domain/listing"
	mListing "github.com/gavelapp/goapi/domain/listing/mocks"
	"github.com/gavelapp/goapi/stores/listing/usecase"
)

func activeListing(id string, lister domain.UserId, price float64) *listing.Listing {
	return &listing.Listing{
		Id:         id,
		Title:      "air jordan 1 retro",
		Category:   listing.CategorySneakers,
		Lister:     lister,
		StartPrice: price,
		FinalPrice: price,
		Bidders:    []listing.Bid{},
		ExpireAt:   time.Now().Add(24 * time.Hour),
		Status:     listing.StatusActive,
	}
}

func TestCreateSetsAuctionFields(t *testing.T) {
	mockRepo := &mListing.Repo{}
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	ctx := ctx.Background()
	u := usecase.NewListingUseCase(mockRepo)

	created, err := u.Create(ctx, "user-1", &listing.Listing{
		Title:      "vintage clock",
		Category:   listing.CategoryAntiques,
		StartPrice: 30,
		ExpireAt:   time.Now().Add(time.Hour),
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, domain.UserId("user-1"), created.Lister)
	assert.Equal(t, created.StartPrice, created.FinalPrice)
	assert.Equal(t, listing.StatusActive, created.Status)
	assert.Empty(t, created.Bidders)
}

func TestCreateRejectsBadInput(t *testing.T) {
	mockRepo := &mListing.Repo{}

	ctx := ctx.Background()
	u := usecase.NewListingUseCase(mockRepo)

	_, err := u.Create(ctx, "", activeListing("x", "user-1", 10))
	assert.Equal(t, domain.ErrUnauthenticated, err)

	bad := activeListing("x", "user-1", 10)
	bad.Category = listing.Category("Spaceships")
	_, err = u.Create(ctx, "user-1", bad)
	assert.Equal(t, domain.ErrInvalidInput, err)

	past := activeListing("x", "user-1", 10)
	past.ExpireAt = time.Now().Add(-time.Hour)
	_, err = u.Create(ctx, "user-1", past)
	assert.Equal(t, domain.ErrInvalidInput, err)

	negative := activeListing("x", "user-1", -1)
	negative.StartPrice = -1
	_, err = u.Create(ctx, "user-1", negative)
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestPlaceBidAppendsAndRaisesPrice(t *testing.T) {
	mockRepo := &mListing.Repo{}
	l := activeListing("l-1", "seller", 100)

	mockRepo.On("FindOne", mock.Anything, "l-1").Return(l, nil)
	mockRepo.On("PlaceBid", mock.Anything, "l-1", float64(100), mock.Anything, mock.Anything).Return(nil)

	ctx := ctx.Background()
	u := usecase.NewListingUseCase(mockRepo)

	bid, err := u.PlaceBid(ctx, "buyer", "l-1", "150")
	assert.NoError(t, err)
	assert.Equal(t, domain.UserId("buyer"), bid.Bidder)
	assert.Equal(t, float64(150), bid.Amount)
}

func TestPlaceBidRejections(t *testing.T) {
	ctx := ctx.Background()

	cases := []struct {
		name   string
		mutate func(*listing.Listing)
		bidder domain.UserId
		amount string
		want   error
	}{
		{"anonymous", func(l *listing.Listing) {}, "", "150", domain.ErrUnauthenticated},
		{"equal to current price", func(l *listing.Listing) {}, "buyer", "100", domain.ErrBidTooLow},
		{"below current price", func(l *listing.Listing) {}, "buyer", "99.99", domain.ErrBidTooLow},
		{"own listing", func(l *listing.Listing) {}, "seller", "150", domain.ErrSelfBid},
		{"malformed amount", func(l *listing.Listing) {}, "buyer", "abc", domain.ErrInvalidInput},
		{"negative amount", func(l *listing.Listing) {}, "buyer", "-5", domain.ErrInvalidInput},
		{"expired", func(l *listing.Listing) { l.ExpireAt = time.Now().Add(-time.Minute) }, "buyer", "150", domain.ErrExpired},
		{"already sold", func(l *listing.Listing) { l.Status = listing.StatusSold }, "buyer", "150", domain.ErrAlreadyFinalized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &mListing.Repo{}
			l := activeListing("l-1", "seller", 100)
			tc.mutate(l)
			mockRepo.On("FindOne", mock.Anything, "l-1").Return(l, nil)

			u := usecase.NewListingUseCase(mockRepo)
			_, err := u.PlaceBid(ctx, tc.bidder, "l-1", tc.amount)
			assert.Equal(t, tc.want, err)
			mockRepo.AssertNotCalled(t, "PlaceBid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPlaceBidLostRaceIsReclassified(t *testing.T) {
	mockRepo := &mListing.Repo{}
	stale := activeListing("l-1", "seller", 100)
	fresh := activeListing("l-1", "seller", 100)
	fresh.FinalPrice = 180
	fresh.Bidders = []listing.Bid{{Bidder: "rival", Amount: 180}}

	mockRepo.On("FindOne", mock.Anything, "l-1").Return(stale, nil).Once()
	mockRepo.On("PlaceBid", mock.Anything, "l-1", float64(100), mock.Anything, mock.Anything).Return(domain.ErrConflict)
	mockRepo.On("FindOne", mock.Anything, "l-1").Return(fresh, nil).Once()

	ctx := ctx.Background()
	u := usecase.NewListingUseCase(mockRepo)

	_, err := u.PlaceBid(ctx, "buyer", "l-1", "150")
	assert.Equal(t, domain.ErrBidTooLow, err)
}

func TestPlaceBidLostRaceStillAhead(t *testing.T) {
	mockRepo := &mListing.Repo{}
	stale := activeListing("l-1", "seller", 100)
	fresh := activeListing("l-1", "seller", 100)
	fresh.FinalPrice = 120
	fresh.Bidders = []listing.Bid{{Bidder: "rival", Amount: 120}}

	mockRepo.On("FindOne", mock.Anything, "l-1").Return(stale, nil).Once()
	mockRepo.On("PlaceBid", mock.Anything, "l-1", float64(100), mock.Anything, mock.Anything).Return(domain.ErrConflict)
	mockRepo.On("FindOne", mock.Anything, "l-1").Return(fresh, nil).Once()

	ctx := ctx.Background()
	u := usecase.NewListingUseCase(mockRepo)

	_, err := u.PlaceBid(ctx, "buyer", "l-1", "150")
	assert.Equal(t, domain.ErrConflict, err)
}

func TestFinalizeByWinner(t *testing.T) {
	mockRepo := &mListing.Repo{}
	l := activeListing("l-1", "seller", 100)
	l.ExpireAt = time.Now().Add(-time.Minute)
	l.FinalPrice = 150
	l.Bidders = []listing.Bid{
		{Bidder: "early-bird", Amount: 120},
		{Bidder: "winner", Amount: 150},
	}

	mockRepo.On("FindOne", mock.Anything, "l-1").Return(l, nil)
	mockRepo.On("Finalize", mock.Anything, "l-1", listing.StatusSold).Return(nil)

	ctx := ctx.Background()
	u := usecase.NewListingUseCase(mockRepo)

	assert.NoError(t, u.Finalize(ctx, "winner", false, "l-1", listing.StatusSold))
	mockRepo.AssertCalled(t, "Finalize", mock.Anything, "l-1", listing.StatusSold)
}

func TestFinalizeRejections(t *testing.T) {
	ctx := ctx.Background()

	cases := []struct {
		name      string
		mutate    func(*listing.Listing)
		requester domain.UserId
		isAdmin   bool
		target    listing.Status
		want      error
	}{
		{"not the winner", func(l *listing.Listing) {}, "early-bird", false, listing.StatusSold, domain.ErrForbidden},
		{"before the deadline", func(l *listing.Listing) { l.ExpireAt = time.Now().Add(time.Hour) }, "winner", false, listing.StatusSold, domain.ErrForbidden},
		{"no bids", func(l *listing.Listing) { l.Bidders = nil }, "winner", true, listing.StatusSold, domain.ErrNoWinner},
		{"already sold", func(l *listing.Listing) { l.Status = listing.StatusSold }, "winner", false, listing.StatusSold, domain.ErrAlreadyFinalized},
		{"invalid target", func(l *listing.Listing) {}, "winner", false, listing.StatusActive, domain.ErrBadParamInput},
		{"anonymous", func(l *listing.Listing) {}, "", false, listing.StatusSold, domain.ErrUnauthenticated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &mListing.Repo{}
			l := activeListing("l-1", "seller", 100)
			l.ExpireAt = time.Now().Add(-time.Minute)
			l.Bidders = []listing.Bid{
				{Bidder: "early-bird", Amount: 120},
				{Bidder: "winner", Amount: 150},
			}
			tc.mutate(l)
			mockRepo.On("FindOne", mock.Anything, "l-1").Return(l, nil)

			u := usecase.NewListingUseCase(mockRepo)
			err := u.Finalize(ctx, tc.requester, tc.isAdmin, "l-1", tc.target)
			assert.Equal(t, tc.want, err)
			mockRepo.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestFinalizeDisputeTwiceIsNoop(t *testing.T) {
	mockRepo := &mListing.Repo{}
	l := activeListing("l-1", "seller", 100)
	l.ExpireAt = time.Now().Add(-time.Minute)
	l.Status = listing.StatusDisputed
	l.Bidders = []listing.Bid{{Bidder: "winner", Amount: 150}}

	mockRepo.On("FindOne", mock.Anything, "l-1").Return(l, nil)

	ctx := ctx.Background()
	u := usecase.NewListingUseCase(mockRepo)

	assert.NoError(t, u.Finalize(ctx, "winner", false, "l-1", listing.StatusDisputed))
	mockRepo.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything, mock.Anything)
}

func TestFinalizeByAdmin(t *testing.T) {
	mockRepo := &mListing.Repo{}
	l := activeListing("l-1", "seller", 100)
	l.ExpireAt = time.Now().Add(-time.Minute)
	l.Bidders = []listing.Bid{{Bidder: "winner", Amount: 150}}

	mockRepo.On("FindOne", mock.Anything, "l-1").Return(l, nil)
	mockRepo.On("Finalize", mock.Anything, "l-1", listing.StatusDisputed).Return(nil)

	ctx := ctx.Background()
	u := usecase.NewListingUseCase(mockRepo)

	assert.NoError(t, u.Finalize(ctx, "moderator", true, "l-1", listing.StatusDisputed))
}

func TestEditGuards(t *testing.T) {
	ctx := ctx.Background()
	patch := &listing.ListingPatchable{Title: ptr.String("updated title")}

	t.Run("owner edits unbid active listing", func(t *testing.T) {
		mockRepo := &mListing.Repo{}
		mockRepo.On("FindOne", mock.Anything, "l-1").Return(activeListing("l-1", "seller", 100), nil)
		mockRepo.On("Patch", mock.Anything, "l-1", patch).Return(nil)

		u := usecase.NewListingUseCase(mockRepo)
		assert.NoError(t, u.Edit(ctx, "seller", "l-1", patch))
	})

	t.Run("non owner is rejected", func(t *testing.T) {
		mockRepo := &mListing.Repo{}
		mockRepo.On("FindOne", mock.Anything, "l-1").Return(activeListing("l-1", "seller", 100), nil)

		u := usecase.NewListingUseCase(mockRepo)
		assert.Equal(t, domain.ErrForbidden, u.Edit(ctx, "stranger", "l-1", patch))
	})

	t.Run("bid listing is frozen", func(t *testing.T) {
		mockRepo := &mListing.Repo{}
		l := activeListing("l-1", "seller", 100)
		l.Bidders = []listing.Bid{{Bidder: "buyer", Amount: 120}}
		mockRepo.On("FindOne", mock.Anything, "l-1").Return(l, nil)

		u := usecase.NewListingUseCase(mockRepo)
		assert.Equal(t, domain.ErrForbidden, u.Edit(ctx, "seller", "l-1", patch))
	})
}

func TestEditLostRaceToBid(t *testing.T) {
	mockRepo := &mListing.Repo{}
	patch := &listing.ListingPatchable{Title: ptr.String("updated title")}
	stale := activeListing("l-1", "seller", 100)
	fresh := activeListing("l-1", "seller", 100)
	fresh.FinalPrice = 120
	fresh.Bidders = []listing.Bid{{Bidder: "buyer", Amount: 120}}

	mockRepo.On("FindOne", mock.Anything, "l-1").Return(stale, nil).Once()
	mockRepo.On("Patch", mock.Anything, "l-1", patch).Return(domain.ErrConflict)
	mockRepo.On("FindOne", mock.Anything, "l-1").Return(fresh, nil).Once()

	ctx := ctx.Background()
	u := usecase.NewListingUseCase(mockRepo)

	assert.Equal(t, domain.ErrForbidden, u.Edit(ctx, "seller", "l-1", patch))
}

func TestDeleteGuards(t *testing.T) {
	ctx := ctx.Background()

	t.Run("owner deletes unbid listing", func(t *testing.T) {
		mockRepo := &mListing.Repo{}
		mockRepo.On("FindOne", mock.Anything, "l-1").Return(activeListing("l-1", "seller", 100), nil)
		mockRepo.On("Delete", mock.Anything, "l-1").Return(nil)

		u := usecase.NewListingUseCase(mockRepo)
		assert.NoError(t, u.Delete(ctx, "seller", false, "l-1"))
	})

	t.Run("bid listing is frozen", func(t *testing.T) {
		mockRepo := &mListing.Repo{}
		l := activeListing("l-1", "seller", 100)
		l.Bidders = []listing.Bid{{Bidder: "buyer", Amount: 120}}
		mockRepo.On("FindOne", mock.Anything, "l-1").Return(l, nil)

		u := usecase.NewListingUseCase(mockRepo)
		assert.Equal(t, domain.ErrForbidden, u.Delete(ctx, "seller", false, "l-1"))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("lost race to a bid", func(t *testing.T) {
		mockRepo := &mListing.Repo{}
		stale := activeListing("l-1", "seller", 100)
		fresh := activeListing("l-1", "seller", 100)
		fresh.FinalPrice = 120
		fresh.Bidders = []listing.Bid{{Bidder: "buyer", Amount: 120}}

		mockRepo.On("FindOne", mock.Anything, "l-1").Return(stale, nil).Once()
		mockRepo.On("Delete", mock.Anything, "l-1").Return(domain.ErrConflict)
		mockRepo.On("FindOne", mock.Anything, "l-1").Return(fresh, nil).Once()

		u := usecase.NewListingUseCase(mockRepo)
		assert.Equal(t, domain.ErrForbidden, u.Delete(ctx, "seller", false, "l-1"))
	})

	t.Run("admin removes a bid listing", func(t *testing.T) {
		mockRepo := &mListing.Repo{}
		l := activeListing("l-1", "seller", 100)
		l.Status = listing.StatusSold
		l.Bidders = []listing.Bid{{Bidder: "buyer", Amount: 120}}
		mockRepo.On("FindOne", mock.Anything, "l-1").Return(l, nil)
		mockRepo.On("ForceDelete", mock.Anything, "l-1").Return(nil)

		u := usecase.NewListingUseCase(mockRepo)
		assert.NoError(t, u.Delete(ctx, "moderator", true, "l-1"))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestTimelinePartitions(t *testing.T) {
	mockRepo := &mListing.Repo{}
	expired := activeListing("l-old", "seller", 10)
	expired.ExpireAt = time.Now().Add(-time.Hour)
	hot := activeListing("l-hot", "seller", 10)
	hot.Views = 7

	mockRepo.On("FindAll", mock.Anything).Return([]*listing.Listing{expired, hot}, nil)

	ctx := ctx.Background()
	u := usecase.NewListingUseCase(mockRepo)

	tl, err := u.Timeline(ctx)
	assert.NoError(t, err)
	assert.Len(t, tl.All, 2)
	assert.Len(t, tl.Expired, 1)
	assert.Len(t, tl.Unexpired, 1)
	assert.Len(t, tl.Trending, 1)
	assert.Equal(t, "l-hot", tl.Trending[0].Id)
}
