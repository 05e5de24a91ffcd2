package report

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zirachw/CarGoOwner/app/echoServer/controller/vehicle"
	"github.com/zirachw/CarGoOwner/model"
	reportsvc "github.com/zirachw/CarGoOwner/service/report"
	"github.com/zirachw/CarGoOwner/util/httpx"
	"github.com/zirachw/CarGoOwner/util/listing"
)

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Controller struct {
	Svc reportsvc.Service
	Log *slog.Logger
}

// month reads ?month=1..12; absent or 0 means all months.
func month(c echo.Context) (int, error) {
	m, err := httpx.IntParam(c, "month")
	if err != nil {
		return 0, err
	}
	if m == nil {
		return 0, nil
	}
	if *m < 0 || *m > 12 {
		return 0, fmt.Errorf("%w: month", httpx.ErrBadParam)
	}
	return *m, nil
}

// GET /v1/reports/availability?color=&year=&available=
func (h *Controller) Availability(c echo.Context) error {
	req, err := httpx.PageRequest(c, reportsvc.PerPage)
	if err != nil {
		return httpx.Error(c, h.Log, "report availability", err)
	}
	f, err := vehicle.Filter(c)
	if err != nil {
		return httpx.Error(c, h.Log, "report availability", err)
	}
	page, err := h.Svc.Availability(c.Request().Context(), f, req)
	if err != nil {
		return httpx.Error(c, h.Log, "report availability", err)
	}
	return c.JSON(http.StatusOK, httpx.NewTable(page, model.AvailabilityColumns, model.Vehicle.Row))
}

// GET /v1/reports/history?month=
func (h *Controller) History(c echo.Context) error {
	req, err := httpx.PageRequest(c, reportsvc.PerPage)
	if err != nil {
		return httpx.Error(c, h.Log, "report history", err)
	}
	m, err := month(c)
	if err != nil {
		return httpx.Error(c, h.Log, "report history", err)
	}
	page, err := h.Svc.History(c.Request().Context(), m, req)
	if err != nil {
		return httpx.Error(c, h.Log, "report history", err)
	}
	return c.JSON(http.StatusOK, httpx.NewTable(page, model.HistoryColumns, model.HistoryRow))
}

// GET /v1/reports/revenue?month=
func (h *Controller) Revenue(c echo.Context) error {
	req, err := httpx.PageRequest(c, reportsvc.PerPage)
	if err != nil {
		return httpx.Error(c, h.Log, "report revenue", err)
	}
	m, err := month(c)
	if err != nil {
		return httpx.Error(c, h.Log, "report revenue", err)
	}
	rev, err := h.Svc.Revenue(c.Request().Context(), m, req)
	if err != nil {
		return httpx.Error(c, h.Log, "report revenue", err)
	}
	table := httpx.NewTable(rev.Page, model.RevenueColumns, model.RevenueRow)
	return c.JSON(http.StatusOK, echo.Map{
		"data":       table.Data,
		"meta":       table.Meta,
		"columns":    table.Columns,
		"rows":       table.Rows,
		"total":      rev.Total,
		"total_text": listing.FormatRupiah(rev.Total),
	})
}

// GET /v1/reports/revenue/months
func (h *Controller) Months(c echo.Context) error {
	out, err := h.Svc.Months(c.Request().Context())
	if err != nil {
		return httpx.Error(c, h.Log, "report months", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/reports/revenue/export?month=
func (h *Controller) Export(c echo.Context) error {
	m, err := month(c)
	if err != nil {
		return httpx.Error(c, h.Log, "report export", err)
	}
	var buf bytes.Buffer
	if err := h.Svc.ExportRevenue(c.Request().Context(), m, &buf); err != nil {
		return httpx.Error(c, h.Log, "report export", err)
	}
	name := "pendapatan.xlsx"
	if m > 0 {
		name = fmt.Sprintf("pendapatan-%02d.xlsx", m)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxType, buf.Bytes())
}
