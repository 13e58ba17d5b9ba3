package listing

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/domain"
)

// Category is the fixed enumeration browsing partitions are keyed on.
// Values outside the enumeration are rejected at creation time.
type Category string

const (
	CategorySneakers     = Category("Sneakers")
	CategoryAntiques     = Category("Antiques")
	CategoryTech         = Category("Tech")
	CategoryAccessories  = Category("Accessories")
	CategoryCollectibles = Category("Collectibles")
)

var Categories = []Category{
	CategorySneakers,
	CategoryAntiques,
	CategoryTech,
	CategoryAccessories,
	CategoryCollectibles,
}

func (c Category) IsValid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Status is the persisted lifecycle state. "expired" is deliberately not a
// member: it is always computed from ExpireAt so the stored status can never
// go stale against the clock.
type Status string

const (
	StatusActive   = Status("active")
	StatusSold     = Status("sold")
	StatusDisputed = Status("disputed")
)

func (s Status) IsTerminal() bool {
	return s == StatusSold || s == StatusDisputed
}

type Dimensions struct {
	Height float64 `json:"height" bson:"height"`
	Length float64 `json:"length" bson:"length"`
	Width  float64 `json:"width" bson:"width"`
}

type Listing struct {
	ObjectId    primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Id          string             `json:"id" bson:"id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"desc" bson:"desc"`
	Category    Category           `json:"category" bson:"category"`
	Weight      float64            `json:"weight" bson:"weight"`
	Dimensions  Dimensions         `json:"dimensions" bson:"dimensions"`
	Image       string             `json:"image" bson:"image"`
	Lister      domain.UserId      `json:"lister" bson:"lister"`
	StartPrice  float64            `json:"startPrice" bson:"startPrice"`
	FinalPrice  float64            `json:"finalPrice" bson:"finalPrice"`
	Bidders     []Bid              `json:"bidders" bson:"bidders"`
	ExpireAt    time.Time          `json:"expireAt" bson:"expireAt"`
	Views       int32              `json:"views" bson:"views"`
	Status      Status             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// HighestBidder returns the identity at the tail of the bidders sequence,
// which is the winner once the listing expires.
func (l *Listing) HighestBidder() (domain.UserId, bool) {
	if len(l.Bidders) == 0 {
		return "", false
	}
	return l.Bidders[len(l.Bidders)-1].Bidder, true
}

func (l *Listing) HasBids() bool {
	return len(l.Bidders) > 0
}

// ListingPatchable carries the non-auction fields an owner may still edit
// while the listing is active and unbid. Auction fields are absent on purpose.
type ListingPatchable struct {
	Title       *string     `json:"title" bson:"title,omitempty"`
	Description *string     `json:"desc" bson:"desc,omitempty"`
	Category    *Category   `json:"category" bson:"category,omitempty"`
	Weight      *float64    `json:"weight" bson:"weight,omitempty"`
	Dimensions  *Dimensions `json:"dimensions" bson:"dimensions,omitempty"`
	Image       *string     `json:"image" bson:"image,omitempty"`
}

type selectOptions struct {
	Id       *string        `bson:"id"`
	Lister   *domain.UserId `bson:"lister"`
	Category *Category      `bson:"category"`
	Status   *Status        `bson:"status"`
	Offset   *int32         `bson:"-"`
	Limit    *int32         `bson:"-"`
}

type SelectOptions func(*selectOptions) error

func GetSelectOptions(opts ...SelectOptions) (selectOptions, error) {
	res := selectOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithId(id string) SelectOptions {
	return func(options *selectOptions) error {
		options.Id = &id
		return nil
	}
}

func WithLister(lister domain.UserId) SelectOptions {
	return func(options *selectOptions) error {
		options.Lister = &lister
		return nil
	}
}

func WithCategory(category Category) SelectOptions {
	return func(options *selectOptions) error {
		options.Category = &category
		return nil
	}
}

func WithStatus(status Status) SelectOptions {
	return func(options *selectOptions) error {
		options.Status = &status
		return nil
	}
}

func WithPagination(offset int32, limit int32) SelectOptions {
	return func(options *selectOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type Repo interface {
	Create(c ctx.Ctx, value *Listing) error
	FindOne(c ctx.Ctx, id string) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...SelectOptions) ([]*Listing, error)
	Count(c ctx.Ctx, opts ...SelectOptions) (int, error)
	// Patch and Delete only land while the listing is still active with an
	// empty bidders array, so a bid accepted after the caller's read freezes
	// the listing at the write itself. Returns domain.ErrConflict when the
	// guard does not match, caller re-reads and classifies.
	Patch(c ctx.Ctx, id string, patchable *ListingPatchable) error
	Delete(c ctx.Ctx, id string) error

	// ForceDelete removes the listing regardless of status or bids.
	ForceDelete(c ctx.Ctx, id string) error

	// PlaceBid performs the atomic conditional update of the bid race: the
	// write only lands if the listing is still active, unexpired at the
	// instant the update executes, and its finalPrice still equals prevPrice.
	// Returns domain.ErrConflict when the guard does not match.
	PlaceBid(c ctx.Ctx, id string, prevPrice float64, bid Bid, now time.Time) error

	// Finalize moves an expired listing to its terminal status. The guard
	// matches only status=active so terminal states can never regress.
	Finalize(c ctx.Ctx, id string, status Status) error

	IncreaseViewCount(c ctx.Ctx, id string, count int) (int32, error)
}

type Usecase interface {
	Create(c ctx.Ctx, lister domain.UserId, value *Listing) (*Listing, error)
	Get(c ctx.Ctx, id string) (*Listing, error)
	Fetch(c ctx.Ctx) ([]*Listing, error)
	Timeline(c ctx.Ctx) (*Timeline, error)
	Edit(c ctx.Ctx, editor domain.UserId, id string, patchable *ListingPatchable) error
	Delete(c ctx.Ctx, requester domain.UserId, isAdmin bool, id string) error
	PlaceBid(c ctx.Ctx, bidder domain.UserId, id string, rawAmount string) (*Bid, error)
	Finalize(c ctx.Ctx, requester domain.UserId, isAdmin bool, id string, status Status) error
	View(c ctx.Ctx, id string) (int32, error)
}
