// model/rental.go
package model

import (
	"strconv"
	"strings"

	"github.com/zirachw/CarGoOwner/util/listing"
)

const DateLayout = "2006-01-02"

// Rental is a row of Peminjaman joined with the customer it belongs to.
type Rental struct {
	ID                  int64   `json:"id"`
	NomorPlat           string  `json:"nomor_plat"`
	NIK                 string  `json:"nik"`
	Nama                string  `json:"nama"`
	Kontak              string  `json:"kontak"`
	TanggalPeminjaman   string  `json:"tanggal_peminjaman"`
	TanggalPengembalian *string `json:"tanggal_pengembalian,omitempty"`
	TanggalPembayaran   *string `json:"tanggal_pembayaran,omitempty"`
	TenggatPengembalian string  `json:"tenggat_pengembalian"`
	TenggatPembayaran   string  `json:"tenggat_pembayaran"`
	BesarPembayaran     int64   `json:"besar_pembayaran"`
	StatusPengembalian  bool    `json:"status_pengembalian"`
	StatusPembayaran    bool    `json:"status_pembayaran"`
}

// BookingForm opens a rental for an available car and a customer who is not
// borrowing anything.
type BookingForm struct {
	NIK                 string `json:"nik" form:"nik" validate:"required,nik"`
	NomorPlat           string `json:"nomor_plat" form:"nomor_plat" validate:"required,plate"`
	TanggalPeminjaman   string `json:"tanggal_peminjaman" form:"tanggal_peminjaman" validate:"required,isodate"`
	TenggatPengembalian string `json:"tenggat_pengembalian" form:"tenggat_pengembalian" validate:"required,isodate"`
	TenggatPembayaran   string `json:"tenggat_pembayaran" form:"tenggat_pembayaran" validate:"required,isodate"`
	BesarPembayaran     string `json:"besar_pembayaran" form:"besar_pembayaran" validate:"required,digits,max=12"`
}

func (f BookingForm) Normalize() BookingForm {
	f.NIK = strings.TrimSpace(f.NIK)
	f.NomorPlat = strings.ToUpper(strings.TrimSpace(f.NomorPlat))
	f.TanggalPeminjaman = strings.TrimSpace(f.TanggalPeminjaman)
	f.TenggatPengembalian = strings.TrimSpace(f.TenggatPengembalian)
	f.TenggatPembayaran = strings.TrimSpace(f.TenggatPembayaran)
	f.BesarPembayaran = strings.TrimSpace(f.BesarPembayaran)
	return f
}

// Amount returns the validated payment amount.
func (f BookingForm) Amount() int64 {
	n, _ := strconv.ParseInt(f.BesarPembayaran, 10, 64)
	return n
}

// EventForm records a return or a payment. An empty date means today.
type EventForm struct {
	Tanggal string `json:"tanggal" form:"tanggal" validate:"omitempty,isodate"`
}

func (f EventForm) Normalize() EventForm {
	f.Tanggal = strings.TrimSpace(f.Tanggal)
	return f
}

type RentalFilter struct {
	Returned  *bool
	Paid      *bool
	NIK       *string
	NomorPlat *string
}

var RentalColumns = []listing.Column{
	{Key: "id", Label: "ID", Kind: listing.Number},
	{Key: "nama", Label: "Nama", Kind: listing.Text},
	{Key: "nik", Label: "NIK", Kind: listing.Text},
	{Key: "nomor_plat", Label: "Nomor Plat", Kind: listing.Text},
	{Key: "kontak", Label: "Kontak", Kind: listing.Text},
	{Key: "tanggal_peminjaman", Label: "Tanggal Peminjaman", Kind: listing.Date},
	{Key: "tanggal_pengembalian", Label: "Tanggal Pengembalian", Kind: listing.Date},
	{Key: "tanggal_pembayaran", Label: "Tanggal Pembayaran", Kind: listing.Date},
	{Key: "tenggat_pengembalian", Label: "Tenggat Pengembalian", Kind: listing.Date},
	{Key: "besar_pembayaran", Label: "Besar Pembayaran", Kind: listing.Currency},
	{Key: "status_pengembalian", Label: "Pengembalian", Kind: listing.Status, Badge: listing.Done},
	{Key: "status_pembayaran", Label: "Pembayaran", Kind: listing.Status, Badge: listing.Payment},
}

func (r Rental) Row() []any {
	return []any{
		r.ID, r.Nama, r.NIK, r.NomorPlat, r.Kontak,
		r.TanggalPeminjaman, r.TanggalPengembalian, r.TanggalPembayaran, r.TenggatPengembalian,
		r.BesarPembayaran, r.StatusPengembalian, r.StatusPembayaran,
	}
}
