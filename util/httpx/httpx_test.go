package httpx_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/zirachw/CarGoOwner/util/httpx"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

func ctx(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPageRequest(t *testing.T) {
	c, _ := ctx("/x")
	req, err := httpx.PageRequest(c, 6)
	require.NoError(t, err)
	require.Equal(t, 1, req.Page)
	require.Equal(t, 6, req.PerPage)

	c, _ = ctx("/x?page=3&per_page=20")
	req, err = httpx.PageRequest(c, 6)
	require.NoError(t, err)
	require.Equal(t, 3, req.Page)
	require.Equal(t, 20, req.PerPage)

	for _, q := range []string{"page=x", "per_page=0", "per_page=1000"} {
		c, _ = ctx("/x?" + q)
		_, err = httpx.PageRequest(c, 6)
		require.ErrorIs(t, err, httpx.ErrBadParam, q)
	}
}

func TestParams(t *testing.T) {
	c, _ := ctx("/x?available=1&year=2021&color=%20Hitam%20&empty=")
	b, err := httpx.BoolParam(c, "available")
	require.NoError(t, err)
	require.True(t, *b)

	n, err := httpx.IntParam(c, "year")
	require.NoError(t, err)
	require.Equal(t, 2021, *n)

	require.Equal(t, "Hitam", *httpx.StringParam(c, "color"))
	require.Nil(t, httpx.StringParam(c, "empty"))

	b, err = httpx.BoolParam(c, "missing")
	require.NoError(t, err)
	require.Nil(t, b)

	c, _ = ctx("/x?available=maybe")
	_, err = httpx.BoolParam(c, "available")
	require.ErrorIs(t, err, httpx.ErrBadParam)
}

func TestError_StatusMapping(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	fe := mutation.FieldErrors{"nik": "must be exactly 16 digits"}

	cases := []struct {
		err  error
		code int
	}{
		{fe, http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", mutation.ErrDuplicate), http.StatusConflict},
		{mutation.ErrReferenced, http.StatusConflict},
		{mutation.ErrNotFound, http.StatusNotFound},
		{httpx.ErrBadParam, http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		c, rec := ctx("/x")
		require.NoError(t, httpx.Error(c, log, "op", tc.err))
		require.Equal(t, tc.code, rec.Code, tc.err.Error())
	}

	c, rec := ctx("/x")
	require.NoError(t, httpx.Error(c, log, "op", fe))
	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "validation error", body.Message)
	require.Equal(t, "must be exactly 16 digits", body.Errors["nik"])

	c, rec = ctx("/x")
	require.NoError(t, httpx.Error(c, log, "op", errors.New("secret detail")))
	require.NotContains(t, rec.Body.String(), "secret detail")
}
