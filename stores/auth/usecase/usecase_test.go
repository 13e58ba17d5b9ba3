package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/domain"
	"github.com/gavelapp/goapi/domain/account"
	mAccount "github.com/gavelapp/goapi/domain/account/mocks"
	"github.com/gavelapp/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	mockAccountUC.On("Get", mock.Anything, domain.UserId("user-1")).Return(&account.Account{Id: "user-1"}, nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)
	tkn, err := u.SignToken(ctx, "user-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	id, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestSignTokenUnknownAccount(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	mockAccountUC.On("Get", mock.Anything, domain.UserId("ghost")).Return(nil, domain.ErrNotFound)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)
	_, err := u.SignToken(ctx, "ghost")
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	mockAccountUC.On("Get", mock.Anything, domain.UserId("user-1")).Return(&account.Account{Id: "user-1"}, nil)

	ctx := ctx.Background()
	tkn, err := usecase.New("jwt-secret", mockAccountUC).SignToken(ctx, "user-1")
	assert.NoError(t, err)

	_, err = usecase.New("other-secret", mockAccountUC).ParseToken(ctx, tkn)
	assert.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	mockAccountUC := &mAccount.Usecase{}

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockAccountUC)

	// anything that is not three dot separated segments
	for _, tkn := range []string{"garbage-token", "", "a.b"} {
		_, err := u.ParseToken(ctx, tkn)
		assert.Error(t, err, tkn)
	}
}
