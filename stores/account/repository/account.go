package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/base/database/mongoclient"
	"github.com/gavelapp/goapi/domain"
	"github.com/gavelapp/goapi/domain/account"
	"github.com/gavelapp/goapi/service/query"
)

type accountImpl struct {
	q query.Mongo
}

func NewAccountRepo(q query.Mongo) account.Repo {
	return &accountImpl{q}
}

func (im *accountImpl) Create(c ctx.Ctx, value *account.Account) error {
	if err := im.q.Insert(c, domain.TableAccounts, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *accountImpl) Get(c ctx.Ctx, id domain.UserId) (*account.Account, error) {
	res := &account.Account{}

	if err := im.q.FindOne(c, domain.TableAccounts, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *accountImpl) GetByUsername(c ctx.Ctx, username string) (*account.Account, error) {
	res := &account.Account{}

	if err := im.q.FindOne(c, domain.TableAccounts, bson.M{"username": username}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("username", username).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *accountImpl) Update(c ctx.Ctx, id domain.UserId, updater *account.Updater) error {
	up, err := mongoclient.MakeBsonM(updater)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}

	if err := im.q.Patch(c, domain.TableAccounts, bson.M{"id": id}, up); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.Patch failed")
		return err
	}
	return nil
}
