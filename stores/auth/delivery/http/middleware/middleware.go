package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/domain"
)

type AuthMiddleware struct {
	auth     domain.AuthUsecase
	adminIds []string
}

func New(auth domain.AuthUsecase, adminIds []string) *AuthMiddleware {
	return &AuthMiddleware{
		auth:     auth,
		adminIds: adminIds,
	}
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

// IsAdminUser reports whether the id belongs to the configured admin set.
// Handlers use it when admins share a route with regular users.
func (m *AuthMiddleware) IsAdminUser(id domain.UserId) bool {
	for _, admin := range m.adminIds {
		if id.Equals(domain.UserId(admin)) {
			return true
		}
	}
	return false
}

func (m *AuthMiddleware) validateAuthToken(token string, c echo.Context) (bool, error) {
	context := c.Get("ctx").(ctx.Ctx)

	userId, err := m.auth.ParseToken(context, token)
	if err != nil {
		context.WithField("err", err).Warn("auth.ParseToken failed")
		return false, err
	}

	c.Set("userId", domain.UserId(userId))

	return true, nil
}
