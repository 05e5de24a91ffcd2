package notification

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zirachw/CarGoOwner/model"
	notificationsvc "github.com/zirachw/CarGoOwner/service/notification"
	"github.com/zirachw/CarGoOwner/util/httpx"
)

type Controller struct {
	Svc notificationsvc.Service
	Log *slog.Logger
}

type SetTaskReq struct {
	Task string `json:"task"`
}

// GET /v1/notifications/task
func (h *Controller) Task(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"task": h.Svc.Task(), "tasks": model.Tasks})
}

// PUT /v1/notifications/task  {"task": "Pembayaran Rental"}
func (h *Controller) SetTask(c echo.Context) error {
	var req SetTaskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	t, ok := model.ParseTask(req.Task)
	if !ok {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"task": "must be one of Jadwal Pengembalian, Pembayaran Rental"},
		})
	}
	if err := h.Svc.SetTask(t); err != nil {
		return httpx.Error(c, h.Log, "notification task", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"task": t})
}

// GET /v1/notifications?task=&pending=&page=&per_page=
func (h *Controller) List(c echo.Context) error {
	req, err := httpx.PageRequest(c, notificationsvc.PerPage)
	if err != nil {
		return httpx.Error(c, h.Log, "notification list", err)
	}
	task := h.Svc.Task()
	if s := c.QueryParam("task"); s != "" {
		t, ok := model.ParseTask(s)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown task"})
		}
		task = t
	}
	pending, err := httpx.BoolParam(c, "pending")
	if err != nil {
		return httpx.Error(c, h.Log, "notification list", err)
	}

	page, err := h.Svc.List(c.Request().Context(), task, pending != nil && *pending, req)
	if err != nil {
		return httpx.Error(c, h.Log, "notification list", err)
	}
	table := httpx.NewTable(page, task.Columns(), task.NoticeRow)
	return c.JSON(http.StatusOK, echo.Map{
		"task":    task,
		"data":    table.Data,
		"meta":    table.Meta,
		"columns": table.Columns,
		"rows":    table.Rows,
	})
}
