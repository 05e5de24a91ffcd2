package model

import "github.com/zirachw/CarGoOwner/util/listing"

// Task selects which view of the rentals the notification screen shows.
type Task string

const (
	TaskReturnSchedule Task = "Jadwal Pengembalian"
	TaskRentalPayment  Task = "Pembayaran Rental"
)

var Tasks = []Task{TaskReturnSchedule, TaskRentalPayment}

// ParseTask accepts the label or its short alias ("return", "payment").
func ParseTask(s string) (Task, bool) {
	switch s {
	case string(TaskReturnSchedule), "return":
		return TaskReturnSchedule, true
	case string(TaskRentalPayment), "payment":
		return TaskRentalPayment, true
	}
	return "", false
}

var ReturnScheduleColumns = []listing.Column{
	{Key: "id", Label: "ID", Kind: listing.Number},
	{Key: "nik", Label: "NIK", Kind: listing.Text},
	{Key: "nama", Label: "Nama", Kind: listing.Text},
	{Key: "kontak", Label: "Kontak", Kind: listing.Text},
	{Key: "nomor_plat", Label: "Nomor Plat", Kind: listing.Text},
	{Key: "tanggal_peminjaman", Label: "Tanggal Peminjaman", Kind: listing.Date},
	{Key: "tenggat_pengembalian", Label: "Tenggat Pengembalian", Kind: listing.Date},
	{Key: "status_pengembalian", Label: "Status", Kind: listing.Status, Badge: listing.Done},
}

var RentalPaymentColumns = []listing.Column{
	{Key: "id", Label: "ID", Kind: listing.Number},
	{Key: "nik", Label: "NIK", Kind: listing.Text},
	{Key: "nama", Label: "Nama", Kind: listing.Text},
	{Key: "kontak", Label: "Kontak", Kind: listing.Text},
	{Key: "nomor_plat", Label: "Nomor Plat", Kind: listing.Text},
	{Key: "tenggat_pembayaran", Label: "Tenggat Pembayaran", Kind: listing.Date},
	{Key: "besar_pembayaran", Label: "Besar Pembayaran", Kind: listing.Currency},
	{Key: "status_pembayaran", Label: "Status", Kind: listing.Status, Badge: listing.Done},
}

// Columns returns the table layout of the task's view.
func (t Task) Columns() []listing.Column {
	if t == TaskRentalPayment {
		return RentalPaymentColumns
	}
	return ReturnScheduleColumns
}

// NoticeRow projects a rental onto the task's columns.
func (t Task) NoticeRow(r Rental) []any {
	if t == TaskRentalPayment {
		return []any{r.ID, r.NIK, r.Nama, r.Kontak, r.NomorPlat, r.TenggatPembayaran, r.BesarPembayaran, r.StatusPembayaran}
	}
	return []any{r.ID, r.NIK, r.Nama, r.Kontak, r.NomorPlat, r.TanggalPeminjaman, r.TenggatPengembalian, r.StatusPengembalian}
}
