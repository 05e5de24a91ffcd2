package model

import "github.com/zirachw/CarGoOwner/util/listing"

var AvailabilityColumns = []listing.Column{
	{Key: "nomor_plat", Label: "Nomor Plat", Kind: listing.Text},
	{Key: "model", Label: "Model", Kind: listing.Text},
	{Key: "warna", Label: "Warna", Kind: listing.Text},
	{Key: "tahun", Label: "Tahun", Kind: listing.Number},
	{Key: "status_ketersediaan", Label: "Status", Kind: listing.Status, Badge: listing.Availability},
}

var HistoryColumns = []listing.Column{
	{Key: "id", Label: "ID", Kind: listing.Number},
	{Key: "nama", Label: "Nama", Kind: listing.Text},
	{Key: "nomor_plat", Label: "Nomor Plat", Kind: listing.Text},
	{Key: "tanggal_peminjaman", Label: "Tanggal Peminjaman", Kind: listing.Date},
	{Key: "tanggal_pengembalian", Label: "Tanggal Pengembalian", Kind: listing.Date},
	{Key: "tenggat_pengembalian", Label: "Tenggat Pengembalian", Kind: listing.Date},
	{Key: "besar_pembayaran", Label: "Besar Pembayaran", Kind: listing.Currency},
	{Key: "status_pengembalian", Label: "Status", Kind: listing.Status, Badge: listing.Done},
}

func HistoryRow(r Rental) []any {
	return []any{r.ID, r.Nama, r.NomorPlat, r.TanggalPeminjaman, r.TanggalPengembalian, r.TenggatPengembalian, r.BesarPembayaran, r.StatusPengembalian}
}

var RevenueColumns = []listing.Column{
	{Key: "id", Label: "ID", Kind: listing.Number},
	{Key: "nama", Label: "Nama", Kind: listing.Text},
	{Key: "tanggal_peminjaman", Label: "Tanggal Peminjaman", Kind: listing.Date},
	{Key: "tanggal_pengembalian", Label: "Tanggal Pengembalian", Kind: listing.Date},
	{Key: "tanggal_pembayaran", Label: "Tanggal Pembayaran", Kind: listing.Date},
	{Key: "besar_pembayaran", Label: "Besar Pembayaran", Kind: listing.Currency},
}

func RevenueRow(r Rental) []any {
	return []any{r.ID, r.Nama, r.TanggalPeminjaman, r.TanggalPengembalian, r.TanggalPembayaran, r.BesarPembayaran}
}

// MonthNames labels the period dropdown, index 0 = January.
var MonthNames = []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// Month is one entry of the period dropdown.
type Month struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
}
