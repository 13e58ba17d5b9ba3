package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/gavelapp/goapi/domain"
)

func performResp(t *testing.T, status int, data interface{}) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, MakeJsonResp(c, status, data))
	return rec
}

func TestMakeJsonRespSuccess(t *testing.T) {
	rec := performResp(t, http.StatusOK, map[string]string{"id": "l1"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true,"data":{"id":"l1"}}`, rec.Body.String())
}

func TestMakeJsonRespErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrConflict, http.StatusConflict},
		{domain.ErrAlreadyFinalized, http.StatusConflict},
		{domain.ErrExpired, http.StatusGone},
		{domain.ErrBidTooLow, http.StatusBadRequest},
		{domain.ErrSelfBid, http.StatusBadRequest},
		{domain.ErrNoWinner, http.StatusBadRequest},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrInternalServerError, http.StatusInternalServerError},
	}
	for _, c := range cases {
		rec := performResp(t, http.StatusInternalServerError, c.err)
		require.Equal(t, c.want, rec.Code, c.err.Error())
		require.Contains(t, rec.Body.String(), `"ok":false`)
		require.Contains(t, rec.Body.String(), c.err.Error())
	}
}
