package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/domain"
	"github.com/gavelapp/goapi/domain/account"
	"github.com/gavelapp/goapi/service/query"
)

var timeNow = time.Now

type accountUseCase struct {
	accountRepo account.Repo
}

func NewAccountUseCase(accountRepo account.Repo) account.Usecase {
	return &accountUseCase{
		accountRepo: accountRepo,
	}
}

// normalizeAnswer makes the security answer check forgiving about case and
// surrounding whitespace.
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func (u *accountUseCase) Register(c ctx.Ctx, username, password, securityQuestion, securityAnswer string) (*account.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || securityQuestion == "" || securityAnswer == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := u.accountRepo.GetByUsername(c, username); err == nil {
		return nil, domain.ErrConflict
	} else if err != domain.ErrNotFound {
		c.WithField("err", err).Error("accountRepo.GetByUsername failed")
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.WithField("err", err).Error("bcrypt.GenerateFromPassword failed")
		return nil, err
	}
	answerHash, err := bcrypt.GenerateFromPassword([]byte(normalizeAnswer(securityAnswer)), bcrypt.DefaultCost)
	if err != nil {
		c.WithField("err", err).Error("bcrypt.GenerateFromPassword failed")
		return nil, err
	}

	value := &account.Account{
		Id:                 domain.UserId(uuid.New().String()),
		Username:           username,
		PasswordHash:       string(passwordHash),
		SecurityQuestion:   securityQuestion,
		SecurityAnswerHash: string(answerHash),
		CreatedAt:          timeNow(),
	}

	if err := u.accountRepo.Create(c, value); err == query.ErrDuplicateKey {
		return nil, domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("accountRepo.Create failed")
		return nil, err
	}
	return value, nil
}

func (u *accountUseCase) Login(c ctx.Ctx, username, password string) (*account.Account, error) {
	acc, err := u.accountRepo.GetByUsername(c, strings.TrimSpace(username))
	if err == domain.ErrNotFound {
		return nil, domain.ErrInvalidCredentials
	} else if err != nil {
		c.WithField("err", err).Error("accountRepo.GetByUsername failed")
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return acc, nil
}

func (u *accountUseCase) Get(c ctx.Ctx, id domain.UserId) (*account.Account, error) {
	return u.accountRepo.Get(c, id)
}

func (u *accountUseCase) GetSecurityQuestion(c ctx.Ctx, username string) (string, error) {
	acc, err := u.accountRepo.GetByUsername(c, strings.TrimSpace(username))
	if err != nil {
		return "", err
	}
	return acc.SecurityQuestion, nil
}

func (u *accountUseCase) VerifySecurityQA(c ctx.Ctx, username, answer string) (bool, error) {
	acc, err := u.accountRepo.GetByUsername(c, strings.TrimSpace(username))
	if err != nil {
		return false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.SecurityAnswerHash), []byte(normalizeAnswer(answer))) != nil {
		return false, nil
	}
	return true, nil
}

func (u *accountUseCase) ChangePassword(c ctx.Ctx, username, securityAnswer, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidInput
	}

	acc, err := u.accountRepo.GetByUsername(c, strings.TrimSpace(username))
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.SecurityAnswerHash), []byte(normalizeAnswer(securityAnswer))) != nil {
		return domain.ErrInvalidCredentials
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		c.WithField("err", err).Error("bcrypt.GenerateFromPassword failed")
		return err
	}

	hash := string(passwordHash)
	return u.accountRepo.Update(c, acc.Id, &account.Updater{PasswordHash: &hash})
}
