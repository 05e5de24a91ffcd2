package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zirachw/CarGoOwner/model"
	rs "github.com/zirachw/CarGoOwner/service/rental"
	"github.com/zirachw/CarGoOwner/util/httpx"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// ruleError answers the rental rule violations; handled is false for other errors.
func ruleError(c echo.Context, err error) (handled bool, out error) {
	switch rs.Code(err) {
	case rs.ErrNotFound:
		return true, c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
	case rs.ErrCustomerNotFound:
		return true, c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
	case rs.ErrVehicleNotFound:
		return true, c.JSON(http.StatusNotFound, echo.Map{"message": "vehicle not found"})
	case rs.ErrCustomerBorrowing:
		return true, c.JSON(http.StatusConflict, echo.Map{"message": "customer is still borrowing a car"})
	case rs.ErrVehicleUnavailable:
		return true, c.JSON(http.StatusConflict, echo.Map{"message": "vehicle is not available"})
	case rs.ErrAlreadyReturned:
		return true, c.JSON(http.StatusConflict, echo.Map{"message": "rental already returned"})
	case rs.ErrAlreadyPaid:
		return true, c.JSON(http.StatusConflict, echo.Map{"message": "rental already paid"})
	}
	return false, nil
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	if ok, out := ruleError(c, err); ok {
		return out
	}
	return httpx.Error(c, h.Log, op, err)
}

func rentalID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, httpx.ErrBadParam
	}
	return id, nil
}

// GET /v1/rentals?returned=&paid=&nik=&plate=&page=&per_page=
func (h *Controller) List(c echo.Context) error {
	req, err := httpx.PageRequest(c, rs.PerPage)
	if err != nil {
		return httpx.Error(c, h.Log, "rental list", err)
	}
	var f model.RentalFilter
	if f.Returned, err = httpx.BoolParam(c, "returned"); err != nil {
		return httpx.Error(c, h.Log, "rental list", err)
	}
	if f.Paid, err = httpx.BoolParam(c, "paid"); err != nil {
		return httpx.Error(c, h.Log, "rental list", err)
	}
	f.NIK = httpx.StringParam(c, "nik")
	f.NomorPlat = httpx.StringParam(c, "plate")

	page, err := h.Svc.List(c.Request().Context(), f, req)
	if err != nil {
		return httpx.Error(c, h.Log, "rental list", err)
	}
	return c.JSON(http.StatusOK, httpx.NewTable(page, model.RentalColumns, model.Rental.Row))
}

// GET /v1/rentals/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := rentalID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	out, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, "rental detail", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// POST /v1/rentals
func (h *Controller) Book(c echo.Context) error {
	var req model.BookingForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	req = req.Normalize()
	if err := c.Validate(&req); err != nil {
		return httpx.Error(c, h.Log, "rental book", err)
	}
	out, err := h.Svc.Book(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "rental book", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": out})
}

// POST /v1/rentals/:id/return  {"tanggal": "2024-03-04"} (optional)
func (h *Controller) Return(c echo.Context) error {
	id, err := rentalID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.EventForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	req = req.Normalize()
	if err := c.Validate(&req); err != nil {
		return httpx.Error(c, h.Log, "rental return", err)
	}
	out, err := h.Svc.Return(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, "rental return", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// POST /v1/rentals/:id/pay  {"tanggal": "2024-03-04"} (optional)
func (h *Controller) Pay(c echo.Context) error {
	id, err := rentalID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.EventForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	req = req.Normalize()
	if err := c.Validate(&req); err != nil {
		return httpx.Error(c, h.Log, "rental pay", err)
	}
	out, err := h.Svc.Pay(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, "rental pay", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// DELETE /v1/rentals  {"keys": [1, 2]}
func (h *Controller) Delete(c echo.Context) error {
	var req httpx.DeleteReq[int64]
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	res, err := h.Svc.Delete(c.Request().Context(), req.Keys)
	if err != nil {
		return httpx.Error(c, h.Log, "rental delete", err)
	}
	return httpx.Deleted(c, res)
}
