package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zirachw/CarGoOwner/model"
	"github.com/zirachw/CarGoOwner/util/listing"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

type Repo interface {
	List(ctx context.Context, f model.CustomerFilter, req listing.Request) (listing.Page[model.Customer], error)
	Available(ctx context.Context) ([]model.Customer, error)
	Detail(ctx context.Context, nik string) (*model.Customer, error)

	Create(ctx context.Context, c model.Customer) error
	Update(ctx context.Context, originalNIK string, c model.Customer, setCredit bool) error
	Delete(ctx context.Context, niks []string, p mutation.Policy) (mutation.DeleteResult, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

const selectCols = `NIK, Nama, Kontak, Alamat, CreditPoint, StatusPinjam`

var listSpec = listing.Spec{
	Columns: []string{"NIK", "Nama", "Kontak", "Alamat", "CreditPoint", "StatusPinjam"},
	From:    "Pelanggan",
	OrderBy: "rowid",
	Filters: []listing.Filter{
		{Name: "borrowing", Clause: "StatusPinjam = ?"},
	},
}

func (r *repo) List(ctx context.Context, f model.CustomerFilter, req listing.Request) (listing.Page[model.Customer], error) {
	flt := listing.Filters{}
	if f.Borrowing != nil {
		flt["borrowing"] = boolInt(*f.Borrowing)
	}
	return listing.Fetch(ctx, r.db, listSpec, flt, req, func(rows *sql.Rows) (model.Customer, error) {
		return scanOne(rows)
	})
}

func scanOne(s interface{ Scan(...any) error }) (model.Customer, error) {
	var (
		c      model.Customer
		status sql.NullInt64
	)
	if err := s.Scan(&c.NIK, &c.Nama, &c.Kontak, &c.Alamat, &c.CreditPoint, &status); err != nil {
		return c, err
	}
	c.StatusPinjam = status.Valid && status.Int64 != 0
	return c, nil
}

// Available lists customers who are not borrowing a car.
func (r *repo) Available(ctx context.Context) ([]model.Customer, error) {
	const q = `
		SELECT ` + selectCols + `
		FROM Pelanggan
		WHERE StatusPinjam = 0
		ORDER BY Nama, NIK`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		c, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, nik string) (*model.Customer, error) {
	const q = `
		SELECT ` + selectCols + `
		FROM Pelanggan
		WHERE NIK = ?`
	c, err := scanOne(r.db.QueryRowContext(ctx, q, nik))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, mutation.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, c model.Customer) error {
	const q = `
		INSERT INTO Pelanggan (NIK, Nama, Kontak, Alamat, CreditPoint, StatusPinjam)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, c.NIK, c.Nama, c.Kontak, c.Alamat, c.CreditPoint, boolInt(c.StatusPinjam))
	return mutation.Classify(err)
}

// Update keeps StatusPinjam, which only rentals change. CreditPoint is kept
// unless setCredit.
func (r *repo) Update(ctx context.Context, originalNIK string, c model.Customer, setCredit bool) error {
	const q = `
		UPDATE Pelanggan
		SET NIK = ?, Nama = ?, Kontak = ?, Alamat = ?,
			CreditPoint = CASE WHEN ? THEN ? ELSE CreditPoint END
		WHERE NIK = ?`
	res, err := r.db.ExecContext(ctx, q, c.NIK, c.Nama, c.Kontak, c.Alamat, boolInt(setCredit), c.CreditPoint, originalNIK)
	if err != nil {
		return mutation.Classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return mutation.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, niks []string, p mutation.Policy) (mutation.DeleteResult, error) {
	const q = `DELETE FROM Pelanggan WHERE NIK = ?`
	return mutation.DeleteKeys(ctx, r.db, q, niks, p)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
