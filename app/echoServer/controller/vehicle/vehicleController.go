package vehicle

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zirachw/CarGoOwner/model"
	vehiclesvc "github.com/zirachw/CarGoOwner/service/vehicle"
	"github.com/zirachw/CarGoOwner/util/httpx"
)

// MaxImageBytes bounds an uploaded picture.
const MaxImageBytes = 10 << 20

type Controller struct {
	Svc vehiclesvc.Service
	Log *slog.Logger
}

// GET /v1/vehicles?color=&year=&available=&page=&per_page=
func (h *Controller) List(c echo.Context) error {
	req, err := httpx.PageRequest(c, vehiclesvc.PerPage)
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle list", err)
	}
	f, err := Filter(c)
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle list", err)
	}
	page, err := h.Svc.List(c.Request().Context(), f, req)
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle list", err)
	}
	return c.JSON(http.StatusOK, httpx.NewTable(page, model.VehicleColumns, model.Vehicle.Row))
}

// Filter reads the color/year/available query parameters.
func Filter(c echo.Context) (model.VehicleFilter, error) {
	var (
		f   model.VehicleFilter
		err error
	)
	f.Warna = httpx.StringParam(c, "color")
	if f.Tahun, err = httpx.IntParam(c, "year"); err != nil {
		return f, err
	}
	if f.Available, err = httpx.BoolParam(c, "available"); err != nil {
		return f, err
	}
	return f, nil
}

// GET /v1/vehicles/colors
func (h *Controller) Colors(c echo.Context) error {
	out, err := h.Svc.Colors(c.Request().Context())
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle colors", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/vehicles/years
func (h *Controller) Years(c echo.Context) error {
	out, err := h.Svc.Years(c.Request().Context())
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle years", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/vehicles/available
func (h *Controller) Available(c echo.Context) error {
	out, err := h.Svc.Available(c.Request().Context())
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle available", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/vehicles/:plate
func (h *Controller) Detail(c echo.Context) error {
	plate, err := httpx.PathKey(c, "plate")
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle detail", err)
	}
	v, err := h.Svc.Detail(c.Request().Context(), plate)
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle detail", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": v})
}

// POST /v1/vehicles
func (h *Controller) Create(c echo.Context) error {
	var req model.VehicleForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	req = req.Normalize()
	if err := c.Validate(&req); err != nil {
		return httpx.Error(c, h.Log, "vehicle create", err)
	}
	v, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle create", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": v})
}

// PUT /v1/vehicles/:plate
func (h *Controller) Update(c echo.Context) error {
	plate, err := httpx.PathKey(c, "plate")
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle update", err)
	}
	var req model.VehicleForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	req = req.Normalize()
	if err := c.Validate(&req); err != nil {
		return httpx.Error(c, h.Log, "vehicle update", err)
	}
	v, err := h.Svc.Update(c.Request().Context(), plate, req)
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": v})
}

// DELETE /v1/vehicles  {"keys": ["B 1234 ABC", ...]}
func (h *Controller) Delete(c echo.Context) error {
	var req httpx.DeleteReq[string]
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	res, err := h.Svc.Delete(c.Request().Context(), req.Keys)
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle delete", err)
	}
	return httpx.Deleted(c, res)
}

// PUT /v1/vehicles/:plate/image  multipart field "image"
func (h *Controller) UploadImage(c echo.Context) error {
	plate, err := httpx.PathKey(c, "plate")
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle image", err)
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing image"})
	}
	if fh.Size > MaxImageBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"message": "image too large"})
	}
	src, err := fh.Open()
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle image", err)
	}
	defer src.Close()

	if err := h.Svc.SetImage(c.Request().Context(), plate, src); err != nil {
		return httpx.Error(c, h.Log, "vehicle image", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "image stored"})
}

// GET /v1/vehicles/:plate/image
func (h *Controller) Image(c echo.Context) error {
	plate, err := httpx.PathKey(c, "plate")
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle image", err)
	}
	img, err := h.Svc.Image(c.Request().Context(), plate)
	if err != nil {
		return httpx.Error(c, h.Log, "vehicle image", err)
	}
	return c.Blob(http.StatusOK, "image/jpeg", img)
}
