package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/domain"
	"github.com/gavelapp/goapi/domain/listing"
	"github.com/gavelapp/goapi/service/query"
)

var timeNow = time.Now

type listingUseCase struct {
	listingRepo listing.Repo
}

func NewListingUseCase(listingRepo listing.Repo) listing.Usecase {
	return &listingUseCase{
		listingRepo: listingRepo,
	}
}

func (u *listingUseCase) Create(c ctx.Ctx, lister domain.UserId, value *listing.Listing) (*listing.Listing, error) {
	if lister.IsEmpty() {
		return nil, domain.ErrUnauthenticated
	}

	now := timeNow()
	if !value.Category.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if value.StartPrice < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !value.ExpireAt.After(now) {
		return nil, domain.ErrInvalidInput
	}

	value.Id = uuid.New().String()
	value.Lister = lister
	value.FinalPrice = value.StartPrice
	value.Bidders = []listing.Bid{}
	value.Views = 0
	value.Status = listing.StatusActive
	value.CreatedAt = now

	if err := u.listingRepo.Create(c, value); err == query.ErrDuplicateKey {
		return nil, domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("listingRepo.Create failed")
		return nil, err
	}
	return value, nil
}

func (u *listingUseCase) Get(c ctx.Ctx, id string) (*listing.Listing, error) {
	l, err := u.listingRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, err
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("listingRepo.FindOne failed")
		return nil, err
	}
	return l, nil
}

func (u *listingUseCase) Fetch(c ctx.Ctx) ([]*listing.Listing, error) {
	res, err := u.listingRepo.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("listingRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (u *listingUseCase) Timeline(c ctx.Ctx) (*listing.Timeline, error) {
	res, err := u.listingRepo.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("listingRepo.FindAll failed")
		return nil, err
	}
	return listing.Aggregate(res, timeNow()), nil
}

func (u *listingUseCase) Edit(c ctx.Ctx, editor domain.UserId, id string, patchable *listing.ListingPatchable) error {
	if editor.IsEmpty() {
		return domain.ErrUnauthenticated
	}

	l, err := u.listingRepo.FindOne(c, id)
	if err != nil {
		return err
	}

	if !editor.Equals(l.Lister) {
		return domain.ErrForbidden
	}
	if l.Status.IsTerminal() {
		return domain.ErrAlreadyFinalized
	}
	if listing.IsExpired(l.ExpireAt, timeNow()) {
		return domain.ErrExpired
	}
	if l.HasBids() {
		return domain.ErrForbidden
	}
	if patchable.Category != nil && !patchable.Category.IsValid() {
		return domain.ErrInvalidInput
	}

	if err := u.listingRepo.Patch(c, id, patchable); err == domain.ErrConflict {
		return u.classifyWriteConflict(c, id)
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("listingRepo.Patch failed")
		return err
	}
	return nil
}

func (u *listingUseCase) Delete(c ctx.Ctx, requester domain.UserId, isAdmin bool, id string) error {
	if requester.IsEmpty() {
		return domain.ErrUnauthenticated
	}

	l, err := u.listingRepo.FindOne(c, id)
	if err != nil {
		return err
	}

	if isAdmin {
		return u.listingRepo.ForceDelete(c, id)
	}

	if !requester.Equals(l.Lister) {
		return domain.ErrForbidden
	}
	if l.HasBids() {
		return domain.ErrForbidden
	}

	if err := u.listingRepo.Delete(c, id); err == domain.ErrConflict {
		return u.classifyWriteConflict(c, id)
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("listingRepo.Delete failed")
		return err
	}
	return nil
}

// classifyWriteConflict re-reads a listing after a guarded edit or delete
// misses. A bid that landed after the first read freezes the listing, so the
// caller gets the same answer it would have gotten reading one moment later.
func (u *listingUseCase) classifyWriteConflict(c ctx.Ctx, id string) error {
	l, err := u.listingRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("listingRepo.FindOne failed")
		return domain.ErrConflict
	}

	if l.HasBids() {
		return domain.ErrForbidden
	}
	return domain.ErrConflict
}

func (u *listingUseCase) PlaceBid(c ctx.Ctx, bidder domain.UserId, id string, rawAmount string) (*listing.Bid, error) {
	l, err := u.listingRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	amount, err := listing.ValidateBid(l, rawAmount, bidder, now)
	if err != nil {
		return nil, err
	}

	bid := listing.Bid{
		Bidder:    bidder,
		Amount:    amount,
		CreatedAt: now,
	}

	if err := u.listingRepo.PlaceBid(c, id, l.FinalPrice, bid, now); err == domain.ErrConflict {
		return nil, u.classifyBidConflict(c, id, amount)
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("listingRepo.PlaceBid failed")
		return nil, err
	}

	return &bid, nil
}

// classifyBidConflict re-reads the listing after a guarded write misses so the
// caller gets the reason the race was lost, not a generic conflict.
func (u *listingUseCase) classifyBidConflict(c ctx.Ctx, id string, amount float64) error {
	l, err := u.listingRepo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("listingRepo.FindOne failed")
		return domain.ErrConflict
	}

	if l.Status.IsTerminal() {
		return domain.ErrAlreadyFinalized
	}
	if listing.IsExpired(l.ExpireAt, timeNow()) {
		return domain.ErrExpired
	}
	if amount <= l.FinalPrice {
		return domain.ErrBidTooLow
	}
	return domain.ErrConflict
}

func (u *listingUseCase) Finalize(c ctx.Ctx, requester domain.UserId, isAdmin bool, id string, status listing.Status) error {
	l, err := u.listingRepo.FindOne(c, id)
	if err != nil {
		return err
	}

	now := timeNow()
	if err := listing.ValidateFinalize(l, requester, isAdmin, status, now); err != nil {
		return err
	}
	if l.Status == listing.StatusDisputed && status == listing.StatusDisputed {
		return nil
	}

	if err := u.listingRepo.Finalize(c, id, status); err == domain.ErrConflict {
		fresh, ferr := u.listingRepo.FindOne(c, id)
		if ferr != nil {
			return ferr
		}
		if fresh.Status == listing.StatusDisputed && status == listing.StatusDisputed {
			return nil
		}
		if fresh.Status.IsTerminal() {
			return domain.ErrAlreadyFinalized
		}
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("listingRepo.Finalize failed")
		return err
	}
	return nil
}

func (u *listingUseCase) View(c ctx.Ctx, id string) (int32, error) {
	views, err := u.listingRepo.IncreaseViewCount(c, id, 1)
	if err == domain.ErrNotFound {
		return 0, err
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("listingRepo.IncreaseViewCount failed")
		return 0, err
	}
	return views, nil
}
