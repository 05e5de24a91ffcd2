// Package httpx holds the request parsing and response writing every screen
// controller shares.
package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zirachw/CarGoOwner/util/listing"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

// MaxPerPage caps the per_page query parameter.
const MaxPerPage = 100

var ErrBadParam = errors.New("bad query parameter")

// PageRequest reads ?page and ?per_page. Missing values fall back to page 1
// and perPage.
func PageRequest(c echo.Context, perPage int) (listing.Request, error) {
	req := listing.Request{Page: 1, PerPage: perPage}
	if s := c.QueryParam("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return req, fmt.Errorf("%w: page", ErrBadParam)
		}
		req.Page = n
	}
	if s := c.QueryParam("per_page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > MaxPerPage {
			return req, fmt.Errorf("%w: per_page", ErrBadParam)
		}
		req.PerPage = n
	}
	return req, nil
}

// BoolParam reads a 0/1 (or true/false) query parameter; absent is nil.
func BoolParam(c echo.Context, name string) (*bool, error) {
	s := strings.TrimSpace(c.QueryParam(name))
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadParam, name)
	}
	return &b, nil
}

// IntParam reads an integer query parameter; absent is nil.
func IntParam(c echo.Context, name string) (*int, error) {
	s := strings.TrimSpace(c.QueryParam(name))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadParam, name)
	}
	return &n, nil
}

// StringParam reads a text query parameter; absent or blank is nil.
func StringParam(c echo.Context, name string) *string {
	s := strings.TrimSpace(c.QueryParam(name))
	if s == "" {
		return nil
	}
	return &s
}

// PathKey returns the unescaped path parameter, e.g. a plate with spaces.
func PathKey(c echo.Context, name string) (string, error) {
	s, err := url.PathUnescape(c.Param(name))
	if err != nil || strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %s", ErrBadParam, name)
	}
	return s, nil
}

// DeleteReq is the body of a batch delete.
type DeleteReq[K any] struct {
	Keys []K `json:"keys"`
}

// Table is a list response: typed items, navigation and the rendered grid.
type Table struct {
	Data    any              `json:"data"`
	Meta    listing.Meta     `json:"meta"`
	Columns []listing.Column `json:"columns"`
	Rows    [][]listing.Cell `json:"rows"`
}

// NewTable renders page through cols.
func NewTable[T any](page listing.Page[T], cols []listing.Column, row func(T) []any) Table {
	return Table{
		Data:    page.Items,
		Meta:    page.Meta,
		Columns: cols,
		Rows:    listing.RenderAll(cols, page.Items, row),
	}
}

// Deleted writes a batch delete result.
func Deleted(c echo.Context, res mutation.DeleteResult) error {
	return c.JSON(http.StatusOK, res)
}

// Error maps err onto a status code. Unexpected errors are logged under op
// and reported as "internal error".
func Error(c echo.Context, log *slog.Logger, op string, err error) error {
	if fe, ok := mutation.AsFieldErrors(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"message": "validation error",
			"errors":  fe,
		})
	}
	switch {
	case errors.Is(err, ErrBadParam), errors.Is(err, listing.ErrInvalidPageSize), errors.Is(err, listing.ErrUnknownFilter):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	case errors.Is(err, mutation.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	case errors.Is(err, mutation.ErrDuplicate):
		return c.JSON(http.StatusConflict, echo.Map{"message": "already exists"})
	case errors.Is(err, mutation.ErrReferenced):
		return c.JSON(http.StatusConflict, echo.Map{"message": "still referenced by rentals"})
	}
	log.Error(op, "err", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
}
