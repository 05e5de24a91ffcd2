package customer

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zirachw/CarGoOwner/model"
	customersvc "github.com/zirachw/CarGoOwner/service/customer"
	"github.com/zirachw/CarGoOwner/util/httpx"
)

type Controller struct {
	Svc customersvc.Service
	Log *slog.Logger
}

// GET /v1/customers?borrowing=&page=&per_page=
func (h *Controller) List(c echo.Context) error {
	req, err := httpx.PageRequest(c, customersvc.PerPage)
	if err != nil {
		return httpx.Error(c, h.Log, "customer list", err)
	}
	var f model.CustomerFilter
	if f.Borrowing, err = httpx.BoolParam(c, "borrowing"); err != nil {
		return httpx.Error(c, h.Log, "customer list", err)
	}
	page, err := h.Svc.List(c.Request().Context(), f, req)
	if err != nil {
		return httpx.Error(c, h.Log, "customer list", err)
	}
	return c.JSON(http.StatusOK, httpx.NewTable(page, model.CustomerColumns, model.Customer.Row))
}

// GET /v1/customers/available
func (h *Controller) Available(c echo.Context) error {
	out, err := h.Svc.Available(c.Request().Context())
	if err != nil {
		return httpx.Error(c, h.Log, "customer available", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/customers/:nik
func (h *Controller) Detail(c echo.Context) error {
	nik, err := httpx.PathKey(c, "nik")
	if err != nil {
		return httpx.Error(c, h.Log, "customer detail", err)
	}
	out, err := h.Svc.Detail(c.Request().Context(), nik)
	if err != nil {
		return httpx.Error(c, h.Log, "customer detail", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// POST /v1/customers
func (h *Controller) Create(c echo.Context) error {
	var req model.CustomerForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	req = req.Normalize()
	if err := c.Validate(&req); err != nil {
		return httpx.Error(c, h.Log, "customer create", err)
	}
	out, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return httpx.Error(c, h.Log, "customer create", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": out})
}

// PUT /v1/customers/:nik
func (h *Controller) Update(c echo.Context) error {
	nik, err := httpx.PathKey(c, "nik")
	if err != nil {
		return httpx.Error(c, h.Log, "customer update", err)
	}
	var req model.CustomerForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	req = req.Normalize()
	if err := c.Validate(&req); err != nil {
		return httpx.Error(c, h.Log, "customer update", err)
	}
	out, err := h.Svc.Update(c.Request().Context(), nik, req)
	if err != nil {
		return httpx.Error(c, h.Log, "customer update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// DELETE /v1/customers  {"keys": ["1234567890123456", ...]}
func (h *Controller) Delete(c echo.Context) error {
	var req httpx.DeleteReq[string]
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	res, err := h.Svc.Delete(c.Request().Context(), req.Keys)
	if err != nil {
		return httpx.Error(c, h.Log, "customer delete", err)
	}
	return httpx.Deleted(c, res)
}
