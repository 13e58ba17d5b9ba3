package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/base/delivery"
	"github.com/gavelapp/goapi/domain"
	"github.com/gavelapp/goapi/domain/account"
)

type authHandler struct {
	auth    domain.AuthUsecase
	account account.Usecase
}

func New(e *echo.Echo, auth domain.AuthUsecase, account account.Usecase) {
	handler := &authHandler{
		auth:    auth,
		account: account,
	}
	g := e.Group("/api/auth")
	g.POST("/register", handler.register)
	g.POST("/login", handler.login)
	g.POST("/get-security-question", handler.getSecurityQuestion)
	g.POST("/verify-security-qa", handler.verifySecurityQA)
	g.POST("/change-password", handler.changePassword)
}

type session struct {
	Token   string           `json:"token"`
	Account *account.Account `json:"account"`
}

func (h *authHandler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Username         string `json:"username" validate:"required"`
		Password         string `json:"password" validate:"required"`
		SecurityQuestion string `json:"securityQuestion" validate:"required"`
		SecurityAnswer   string `json:"securityAnswer" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidInput)
	}

	acc, err := h.account.Register(ctx, p.Username, p.Password, p.SecurityQuestion, p.SecurityAnswer)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	tkn, err := h.auth.SignToken(ctx, acc.Id)
	if err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, session{Token: tkn, Account: acc})
}

func (h *authHandler) login(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidInput)
	}

	acc, err := h.account.Login(ctx, p.Username, p.Password)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	tkn, err := h.auth.SignToken(ctx, acc.Id)
	if err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, session{Token: tkn, Account: acc})
}

func (h *authHandler) getSecurityQuestion(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Username string `json:"username" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidInput)
	}

	question, err := h.account.GetSecurityQuestion(ctx, p.Username)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	type response struct {
		SecurityQuestion string `json:"securityQuestion"`
	}

	return delivery.MakeJsonResp(c, http.StatusOK, response{SecurityQuestion: question})
}

func (h *authHandler) verifySecurityQA(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Username       string `json:"username" validate:"required"`
		SecurityAnswer string `json:"securityAnswer" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidInput)
	}

	ok, err := h.account.VerifySecurityQA(ctx, p.Username, p.SecurityAnswer)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrInvalidCredentials)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *authHandler) changePassword(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Username       string `json:"username" validate:"required"`
		SecurityAnswer string `json:"securityAnswer" validate:"required"`
		NewPassword    string `json:"newPassword" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidInput)
	}

	if err := h.account.ChangePassword(ctx, p.Username, p.SecurityAnswer, p.NewPassword); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
