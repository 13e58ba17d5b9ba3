package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/base/database/mongoclient"
	"github.com/gavelapp/goapi/domain"
	"github.com/gavelapp/goapi/domain/keys"
	"github.com/gavelapp/goapi/domain/listing"
	"github.com/gavelapp/goapi/service/cache"
	"github.com/gavelapp/goapi/service/cache/provider"
	"github.com/gavelapp/goapi/service/cache/provider/compound"
	"github.com/gavelapp/goapi/service/cache/provider/primitive"
	redisCache "github.com/gavelapp/goapi/service/cache/provider/redis"
	"github.com/gavelapp/goapi/service/query"
	"github.com/gavelapp/goapi/service/redis"
)

type listingImpl struct {
	q            query.Mongo
	listingCache cache.Service
}

// NewListingRepo builds the mongo backed listing repository. When redis is
// nil only the in-process cache layer is used, which is what tests do.
func NewListingRepo(q query.Mongo, redis redis.Service) listing.Repo {
	layers := []provider.Provider{
		primitive.NewPrimitive("listing", 64),
	}

	if redis != nil {
		layers = append(layers, redisCache.NewRedis(redis))
	}

	return &listingImpl{
		q: q,
		listingCache: cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Second,
			Pfx:   keys.PfxListing,
			Cache: compound.NewCompound(layers),
		}),
	}
}

func (im *listingImpl) Create(c ctx.Ctx, value *listing.Listing) error {
	if err := im.q.Insert(c, domain.TableListings, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *listingImpl) FindOne(c ctx.Ctx, id string) (*listing.Listing, error) {
	res := &listing.Listing{}

	if err := im.listingCache.GetByFunc(c, id, res, func() (interface{}, error) {
		l := &listing.Listing{}
		if err := im.q.FindOne(c, domain.TableListings, bson.M{"id": id}, l); err == query.ErrNotFound {
			return nil, domain.ErrNotFound
		} else if err != nil {
			c.WithField("err", err).WithField("id", id).Error("q.FindOne failed")
			return nil, err
		}
		return l, nil
	}); err != nil {
		return nil, err
	}

	return res, nil
}

func (im *listingImpl) FindAll(c ctx.Ctx, optFns ...listing.SelectOptions) ([]*listing.Listing, error) {
	opts, err := listing.GetSelectOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetSelectOptions failed")
		return nil, err
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	offset := 0
	limit := 0
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	res := []*listing.Listing{}

	if err := im.q.Search(c, domain.TableListings, offset, limit, "_id", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *listingImpl) Count(c ctx.Ctx, optFns ...listing.SelectOptions) (int, error) {
	opts, err := listing.GetSelectOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetSelectOptions failed")
		return 0, err
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return 0, err
	}

	cnt, err := im.q.Count(c, domain.TableListings, qry)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return cnt, nil
}

func (im *listingImpl) Patch(c ctx.Ctx, id string, patchable *listing.ListingPatchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Patch(c, domain.TableListings, mutableSelector(id), updater); err == query.ErrNotFound {
		// guard mismatch, caller re-reads and classifies
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.Patch failed")
		return err
	}

	im.invalidateCache(c, id)
	return nil
}

func (im *listingImpl) Delete(c ctx.Ctx, id string) error {
	if err := im.q.Remove(c, domain.TableListings, mutableSelector(id)); err == query.ErrNotFound {
		// guard mismatch, caller re-reads and classifies
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.Remove failed")
		return err
	}

	im.invalidateCache(c, id)
	return nil
}

func (im *listingImpl) ForceDelete(c ctx.Ctx, id string) error {
	if err := im.q.Remove(c, domain.TableListings, bson.M{"id": id}); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.Remove failed")
		return err
	}

	im.invalidateCache(c, id)
	return nil
}

// mutableSelector matches a listing only while it is still open to edits and
// deletion: active and without a single accepted bid.
func mutableSelector(id string) bson.M {
	return bson.M{
		"id":      id,
		"status":  listing.StatusActive,
		"bidders": bson.M{"$size": 0},
	}
}

func (im *listingImpl) PlaceBid(c ctx.Ctx, id string, prevPrice float64, bid listing.Bid, now time.Time) error {
	selector := bson.M{
		"id":         id,
		"status":     listing.StatusActive,
		"finalPrice": prevPrice,
		"expireAt":   bson.M{"$gt": now},
	}
	update := bson.M{
		"$set":  bson.M{"finalPrice": bid.Amount},
		"$push": bson.M{"bidders": bid},
	}

	if err := im.q.CustomPatch(c, domain.TableListings, selector, update, false); err == query.ErrNotFound {
		// guard mismatch, caller re-reads and classifies
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.CustomPatch failed")
		return err
	}

	im.invalidateCache(c, id)
	return nil
}

func (im *listingImpl) Finalize(c ctx.Ctx, id string, status listing.Status) error {
	selector := bson.M{
		"id":     id,
		"status": listing.StatusActive,
	}
	update := bson.M{
		"$set": bson.M{"status": status},
	}

	if err := im.q.CustomPatch(c, domain.TableListings, selector, update, false); err == query.ErrNotFound {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.CustomPatch failed")
		return err
	}

	im.invalidateCache(c, id)
	return nil
}

func (im *listingImpl) IncreaseViewCount(c ctx.Ctx, id string, count int) (int32, error) {
	res := listing.Listing{}
	if err := im.q.Increment(c, domain.TableListings, bson.M{"id": id}, &res, "views", count); err == query.ErrNotFound {
		return 0, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.Increment failed")
		return 0, err
	}

	im.invalidateCache(c, id)
	return res.Views, nil
}

func (im *listingImpl) invalidateCache(c ctx.Ctx, id string) {
	if err := im.listingCache.Del(c, id); err != nil {
		c.WithField("err", err).WithField("id", id).Error("listingCache.Del failed")
	}
}
