// repository/rental/repo.go
package rental

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zirachw/CarGoOwner/model"
	"github.com/zirachw/CarGoOwner/util/listing"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

// NewRental is what booking inserts.
type NewRental struct {
	NomorPlat           string
	NIK                 string
	TanggalPeminjaman   string
	TenggatPengembalian string
	TenggatPembayaran   string
	BesarPembayaran     int64
}

type Repo interface {
	// Vehicles & customers
	VehicleAvailable(ctx context.Context, tx *sql.Tx, plate string) (available bool, err error)
	CustomerBorrowing(ctx context.Context, tx *sql.Tx, nik string) (borrowing bool, err error)
	SetVehicleAvailable(ctx context.Context, tx *sql.Tx, plate string, available bool) error
	SetCustomerBorrowing(ctx context.Context, tx *sql.Tx, nik string, borrowing bool) error

	// Rentals
	Insert(ctx context.Context, tx *sql.Tx, n NewRental) (int64, error)
	Get(ctx context.Context, tx *sql.Tx, id int64) (*model.Rental, error)
	MarkReturned(ctx context.Context, tx *sql.Tx, id int64, date string) error
	MarkPaid(ctx context.Context, tx *sql.Tx, id int64, date string) error
	Delete(ctx context.Context, ids []int64, p mutation.Policy) (mutation.DeleteResult, error)

	// Lists
	List(ctx context.Context, f model.RentalFilter, req listing.Request) (listing.Page[model.Rental], error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

// Vehicles & customers

// VehicleAvailable returns sql.ErrNoRows for an unknown plate.
func (r *repo) VehicleAvailable(ctx context.Context, tx *sql.Tx, plate string) (bool, error) {
	const q = `
		SELECT StatusKetersediaan
		FROM Mobil
		WHERE NomorPlat = ?`
	var st sql.NullInt64
	err := tx.QueryRowContext(ctx, q, plate).Scan(&st)
	return st.Valid && st.Int64 != 0, err
}

// CustomerBorrowing returns sql.ErrNoRows for an unknown NIK.
func (r *repo) CustomerBorrowing(ctx context.Context, tx *sql.Tx, nik string) (bool, error) {
	const q = `
		SELECT StatusPinjam
		FROM Pelanggan
		WHERE NIK = ?`
	var st sql.NullInt64
	err := tx.QueryRowContext(ctx, q, nik).Scan(&st)
	return st.Valid && st.Int64 != 0, err
}

func (r *repo) SetVehicleAvailable(ctx context.Context, tx *sql.Tx, plate string, available bool) error {
	const q = `
		UPDATE Mobil
		SET StatusKetersediaan = ?
		WHERE NomorPlat = ?`
	_, err := tx.ExecContext(ctx, q, boolInt(available), plate)
	return err
}

func (r *repo) SetCustomerBorrowing(ctx context.Context, tx *sql.Tx, nik string, borrowing bool) error {
	const q = `
		UPDATE Pelanggan
		SET StatusPinjam = ?
		WHERE NIK = ?`
	_, err := tx.ExecContext(ctx, q, boolInt(borrowing), nik)
	return err
}

// Rentals

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, n NewRental) (int64, error) {
	const q = `
		INSERT INTO Peminjaman (NomorPlat, NIK, TanggalPeminjaman, TenggatPengembalian, TenggatPembayaran, BesarPembayaran)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, n.NomorPlat, n.NIK, n.TanggalPeminjaman, n.TenggatPengembalian, n.TenggatPembayaran, n.BesarPembayaran)
	if err != nil {
		return 0, mutation.Classify(err)
	}
	return res.LastInsertId()
}

const selectCols = `
			p.ID, p.NomorPlat, p.NIK, c.Nama, c.Kontak,
			p.TanggalPeminjaman, p.TanggalPengembalian, p.TanggalPembayaran,
			p.TenggatPengembalian, p.TenggatPembayaran, p.BesarPembayaran,
			p.StatusPengembalian, p.StatusPembayaran`

func (r *repo) Get(ctx context.Context, tx *sql.Tx, id int64) (*model.Rental, error) {
	const q = `
		SELECT ` + selectCols + `
		FROM Peminjaman p
		JOIN Pelanggan c ON c.NIK = p.NIK
		WHERE p.ID = ?`
	var qr listing.Querier = r.db
	if tx != nil {
		qr = tx
	}
	rt, err := Scan(qr.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, mutation.ErrNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (r *repo) MarkReturned(ctx context.Context, tx *sql.Tx, id int64, date string) error {
	const q = `
		UPDATE Peminjaman
		SET TanggalPengembalian = ?,
			StatusPengembalian = 1
		WHERE ID = ?`
	_, err := tx.ExecContext(ctx, q, date, id)
	return err
}

func (r *repo) MarkPaid(ctx context.Context, tx *sql.Tx, id int64, date string) error {
	const q = `
		UPDATE Peminjaman
		SET TanggalPembayaran = ?,
			StatusPembayaran = 1
		WHERE ID = ?`
	_, err := tx.ExecContext(ctx, q, date, id)
	return err
}

func (r *repo) Delete(ctx context.Context, ids []int64, p mutation.Policy) (mutation.DeleteResult, error) {
	const q = `DELETE FROM Peminjaman WHERE ID = ?`
	return mutation.DeleteKeys(ctx, r.db, q, ids, p)
}

// Lists

// ListSpec is the joined rental list. Reports reuse it with their own filters.
var ListSpec = listing.Spec{
	Columns: []string{
		"p.ID", "p.NomorPlat", "p.NIK", "c.Nama", "c.Kontak",
		"p.TanggalPeminjaman", "p.TanggalPengembalian", "p.TanggalPembayaran",
		"p.TenggatPengembalian", "p.TenggatPembayaran", "p.BesarPembayaran",
		"p.StatusPengembalian", "p.StatusPembayaran",
	},
	From:    "Peminjaman p JOIN Pelanggan c ON c.NIK = p.NIK",
	OrderBy: "p.ID",
	Filters: []listing.Filter{
		{Name: "returned", Clause: "p.StatusPengembalian = ?"},
		{Name: "paid", Clause: "p.StatusPembayaran = ?"},
		{Name: "nik", Clause: "p.NIK = ?"},
		{Name: "plate", Clause: "p.NomorPlat = ?"},
	},
}

func (r *repo) List(ctx context.Context, f model.RentalFilter, req listing.Request) (listing.Page[model.Rental], error) {
	flt := listing.Filters{}
	if f.Returned != nil {
		flt["returned"] = boolInt(*f.Returned)
	}
	if f.Paid != nil {
		flt["paid"] = boolInt(*f.Paid)
	}
	if f.NIK != nil {
		flt["nik"] = *f.NIK
	}
	if f.NomorPlat != nil {
		flt["plate"] = *f.NomorPlat
	}
	return listing.Fetch(ctx, r.db, ListSpec, flt, req, ScanRows)
}

// ScanRows scans one row selected with ListSpec's columns.
func ScanRows(rows *sql.Rows) (model.Rental, error) { return Scan(rows) }

// Scan reads the ListSpec column set from any row.
func Scan(s interface{ Scan(...any) error }) (model.Rental, error) {
	var (
		rt               model.Rental
		returned, paid   sql.NullString
		stReturn, stPaid sql.NullInt64
	)
	err := s.Scan(
		&rt.ID, &rt.NomorPlat, &rt.NIK, &rt.Nama, &rt.Kontak,
		&rt.TanggalPeminjaman, &returned, &paid,
		&rt.TenggatPengembalian, &rt.TenggatPembayaran, &rt.BesarPembayaran,
		&stReturn, &stPaid,
	)
	if err != nil {
		return rt, err
	}
	if returned.Valid {
		rt.TanggalPengembalian = &returned.String
	}
	if paid.Valid {
		rt.TanggalPembayaran = &paid.String
	}
	rt.StatusPengembalian = stReturn.Valid && stReturn.Int64 != 0
	rt.StatusPembayaran = stPaid.Valid && stPaid.Int64 != 0
	return rt, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
