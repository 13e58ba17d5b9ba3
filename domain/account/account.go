package account

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/domain"
)

type Account struct {
	ObjectId           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Id                 domain.UserId      `json:"id" bson:"id"`
	Username           string             `json:"username" bson:"username"`
	PasswordHash       string             `json:"-" bson:"passwordHash"`
	SecurityQuestion   string             `json:"securityQuestion" bson:"securityQuestion"`
	SecurityAnswerHash string             `json:"-" bson:"securityAnswerHash"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
}

type Updater struct {
	PasswordHash *string `json:"-" bson:"passwordHash,omitempty"`
}

type Repo interface {
	Create(c ctx.Ctx, value *Account) error
	Get(c ctx.Ctx, id domain.UserId) (*Account, error)
	GetByUsername(c ctx.Ctx, username string) (*Account, error)
	Update(c ctx.Ctx, id domain.UserId, updater *Updater) error
}

type Usecase interface {
	Register(c ctx.Ctx, username, password, securityQuestion, securityAnswer string) (*Account, error)
	Login(c ctx.Ctx, username, password string) (*Account, error)
	Get(c ctx.Ctx, id domain.UserId) (*Account, error)
	GetSecurityQuestion(c ctx.Ctx, username string) (string, error)
	VerifySecurityQA(c ctx.Ctx, username, answer string) (bool, error)
	ChangePassword(c ctx.Ctx, username, securityAnswer, newPassword string) error
}
