package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/zirachw/CarGoOwner/util/database/dbtest"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

func server(t *testing.T) *echo.Echo {
	t.Helper()
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return newServer(dbtest.New(t), log, mutation.Atomic)
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	out := map[string]any{}
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

const budi = `{"nik":"1234567890123456","nama":"Budi Santoso","kontak":"081234567890","alamat":"Jl. Merdeka No. 1"}`

func TestHealth(t *testing.T) {
	code, body := do(t, server(t), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", body["status"])
}

func TestCustomerScreen(t *testing.T) {
	e := server(t)

	code, _ := do(t, e, http.MethodPost, "/v1/customers", budi)
	require.Equal(t, http.StatusCreated, code)

	code, _ = do(t, e, http.MethodPost, "/v1/customers", budi)
	require.Equal(t, http.StatusConflict, code)

	code, body := do(t, e, http.MethodPost, "/v1/customers", strings.Replace(budi, "1234567890123456", "12345", 1))
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.Contains(t, body["errors"], "nik")

	code, body = do(t, e, http.MethodGet, "/v1/customers", "")
	require.Equal(t, http.StatusOK, code)
	meta := body["meta"].(map[string]any)
	require.EqualValues(t, 1, meta["total"])
	require.EqualValues(t, 10, meta["per_page"])
	rows := body["rows"].([]any)
	require.Len(t, rows, 1)
	status := rows[0].([]any)[5].(map[string]any)
	require.Equal(t, "Tidak Meminjam", status["text"])

	code, body = do(t, e, http.MethodGet, "/v1/customers?page=9", "")
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, body["rows"])

	code, body = do(t, e, http.MethodDelete, "/v1/customers", `{"keys":[]}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, mutation.NothingSelected, body["notice"])

	code, _ = do(t, e, http.MethodGet, "/v1/customers/1234567890123456", "")
	require.Equal(t, http.StatusOK, code)
}

func TestRentalFlow(t *testing.T) {
	e := server(t)

	code, _ := do(t, e, http.MethodPost, "/v1/customers", budi)
	require.Equal(t, http.StatusCreated, code)
	code, _ = do(t, e, http.MethodPost, "/v1/vehicles",
		`{"nomor_plat":"B 1234 ABC","model":"Toyota Avanza","warna":"Hitam","tahun":"2021","status_ketersediaan":"1"}`)
	require.Equal(t, http.StatusCreated, code)

	code, body := do(t, e, http.MethodPost, "/v1/rentals",
		`{"nik":"1234567890123456","nomor_plat":"B 1234 ABC","tanggal_peminjaman":"2024-03-01",
		  "tenggat_pengembalian":"2024-03-05","tenggat_pembayaran":"2024-03-05","besar_pembayaran":"1500000"}`)
	require.Equal(t, http.StatusCreated, code)
	id := body["data"].(map[string]any)["id"].(float64)
	require.EqualValues(t, 1, id)

	code, body = do(t, e, http.MethodGet, "/v1/vehicles/B%201234%20ABC", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, false, body["data"].(map[string]any)["status_ketersediaan"])

	code, _ = do(t, e, http.MethodDelete, "/v1/vehicles", `{"keys":["B 1234 ABC"]}`)
	require.Equal(t, http.StatusConflict, code)

	code, body = do(t, e, http.MethodGet, "/v1/notifications?task=payment&pending=1", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Pembayaran Rental", body["task"])
	cells := body["rows"].([]any)[0].([]any)
	require.Equal(t, "Rp 1.500.000", cells[6].(map[string]any)["text"])
	require.Equal(t, "Belum", cells[7].(map[string]any)["text"])

	code, _ = do(t, e, http.MethodPost, "/v1/rentals/1/pay", `{"tanggal":"2024-03-02"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = do(t, e, http.MethodPost, "/v1/rentals/1/pay", `{}`)
	require.Equal(t, http.StatusConflict, code)

	code, _ = do(t, e, http.MethodPost, "/v1/rentals/1/return", `{"tanggal":"2024-03-04"}`)
	require.Equal(t, http.StatusOK, code)

	code, body = do(t, e, http.MethodGet, "/v1/reports/revenue?month=3", "")
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 1500000, body["total"])
	require.Equal(t, "Rp 1.500.000", body["total_text"])

	code, body = do(t, e, http.MethodGet, "/v1/reports/revenue/months", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["data"], 1)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/revenue/export?month=3", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "pendapatan-03.xlsx")
	require.NotZero(t, rec.Body.Len())

	code, _ = do(t, e, http.MethodGet, "/v1/reports/history?month=13", "")
	require.Equal(t, http.StatusBadRequest, code)
}

func TestNotificationTask(t *testing.T) {
	e := server(t)

	code, body := do(t, e, http.MethodGet, "/v1/notifications/task", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Jadwal Pengembalian", body["task"])

	code, _ = do(t, e, http.MethodPut, "/v1/notifications/task", `{"task":"Pembayaran Rental"}`)
	require.Equal(t, http.StatusOK, code)

	code, body = do(t, e, http.MethodGet, "/v1/notifications", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Pembayaran Rental", body["task"])

	code, _ = do(t, e, http.MethodPut, "/v1/notifications/task", `{"task":"Laporan"}`)
	require.Equal(t, http.StatusUnprocessableEntity, code)
}
