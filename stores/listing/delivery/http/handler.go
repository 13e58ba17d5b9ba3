package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gavelapp/goapi/base/ctx"
	"github.com/gavelapp/goapi/base/delivery"
	"github.com/gavelapp/goapi/domain"
	"github.com/gavelapp/goapi/domain/listing"
	"github.com/gavelapp/goapi/middleware"
	authMiddleware "github.com/gavelapp/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.Usecase
	authMw  *authMiddleware.AuthMiddleware
}

func New(
	e *echo.Echo,
	authMw *authMiddleware.AuthMiddleware,
	listing listing.Usecase) {
	h := &handler{listing, authMw}

	gs := e.Group("/api/listing")

	gs.GET("/fetch", h.fetch, middleware.CacheHttp(10*time.Second))
	gs.GET("/timeline", h.timeline, middleware.CacheHttp(10*time.Second))
	gs.POST("/post", h.create, authMw.Auth())
	gs.PUT("/edit", h.edit, authMw.Auth())
	gs.DELETE("/delete", h.delete, authMw.Auth())
	gs.POST("/bid", h.bid, authMw.Auth())
	gs.PUT("/status/:id", h.finalize, authMw.Auth())
	gs.POST("/view/:id", h.view)
	gs.GET("/:id", h.get, authMw.OptionalAuth())
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Title       string             `json:"title" validate:"required"`
		Description string             `json:"desc"`
		Category    string             `json:"category" validate:"required,listingCategory"`
		Weight      float64            `json:"weight"`
		Dimensions  listing.Dimensions `json:"dimensions"`
		Image       string             `json:"image"`
		StartPrice  float64            `json:"startPrice" validate:"gte=0"`
		ExpireAt    int64              `json:"expireAt" validate:"required"`
	}

	p := payload{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidInput)
	}

	userId := c.Get("userId").(domain.UserId)

	value := &listing.Listing{
		Title:       p.Title,
		Description: p.Description,
		Category:    listing.Category(p.Category),
		Weight:      p.Weight,
		Dimensions:  p.Dimensions,
		Image:       p.Image,
		StartPrice:  p.StartPrice,
		ExpireAt:    time.Unix(p.ExpireAt, 0),
	}

	res, err := h.listing.Create(ctx, userId, value)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := c.Param("id")

	res, err := h.listing.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	// detail reads count as views, losing one is fine
	if _, err := h.listing.View(ctx, id); err != nil {
		ctx.WithField("err", err).WithField("id", id).Warn("listing.View failed")
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) fetch(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listing.Fetch(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) timeline(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listing.Timeline(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) edit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		ListingId string                    `json:"listingId" validate:"required"`
		Patchable *listing.ListingPatchable `json:"patch" validate:"required"`
	}

	p := payload{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidInput)
	}

	userId := c.Get("userId").(domain.UserId)

	if err := h.listing.Edit(ctx, userId, p.ListingId, p.Patchable); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		ListingId string `json:"listingId" validate:"required"`
	}

	p := payload{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidInput)
	}

	userId := c.Get("userId").(domain.UserId)

	if err := h.listing.Delete(ctx, userId, h.authMw.IsAdminUser(userId), p.ListingId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		ListingId string `json:"listingId" validate:"required"`
		Amount    string `json:"amount" validate:"required"`
	}

	p := payload{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidInput)
	}

	userId := c.Get("userId").(domain.UserId)

	res, err := h.listing.PlaceBid(ctx, userId, p.ListingId, p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) finalize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := c.Param("id")

	type payload struct {
		Status string `json:"status" validate:"required,listingStatus"`
	}

	p := payload{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidInput)
	}

	userId := c.Get("userId").(domain.UserId)

	if err := h.listing.Finalize(ctx, userId, h.authMw.IsAdminUser(userId), id, listing.Status(p.Status)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) view(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := c.Param("id")

	views, err := h.listing.View(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	type response struct {
		Views int32 `json:"views"`
	}

	return delivery.MakeJsonResp(c, http.StatusOK, response{Views: views})
}
