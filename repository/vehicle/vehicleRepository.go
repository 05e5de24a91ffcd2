// repository/vehicle/repo.go
package vehicle

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zirachw/CarGoOwner/model"
	"github.com/zirachw/CarGoOwner/util/listing"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

type Repo interface {
	List(ctx context.Context, f model.VehicleFilter, req listing.Request) (listing.Page[model.Vehicle], error)
	Colors(ctx context.Context) ([]string, error)
	Years(ctx context.Context) ([]int, error)
	Available(ctx context.Context) ([]model.Vehicle, error)
	Detail(ctx context.Context, plate string) (*model.Vehicle, error)

	Create(ctx context.Context, v model.Vehicle) error
	Update(ctx context.Context, originalPlate string, v model.Vehicle) error
	Delete(ctx context.Context, plates []string, p mutation.Policy) (mutation.DeleteResult, error)

	SetImage(ctx context.Context, plate string, img []byte) error
	Image(ctx context.Context, plate string) ([]byte, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

const selectCols = `NomorPlat, Model, Warna, Tahun, StatusKetersediaan, Gambar IS NOT NULL`

var listSpec = listing.Spec{
	Columns: []string{"NomorPlat", "Model", "Warna", "Tahun", "StatusKetersediaan", "Gambar IS NOT NULL"},
	From:    "Mobil",
	OrderBy: "rowid",
	Filters: []listing.Filter{
		{Name: "warna", Clause: "Warna = ?"},
		{Name: "tahun", Clause: "Tahun = ?"},
		{Name: "available", Clause: "StatusKetersediaan = ?"},
	},
}

func (r *repo) List(ctx context.Context, f model.VehicleFilter, req listing.Request) (listing.Page[model.Vehicle], error) {
	flt := listing.Filters{}
	if f.Warna != nil {
		flt["warna"] = *f.Warna
	}
	if f.Tahun != nil {
		flt["tahun"] = *f.Tahun
	}
	if f.Available != nil {
		flt["available"] = boolInt(*f.Available)
	}
	return listing.Fetch(ctx, r.db, listSpec, flt, req, scanVehicle)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVehicle(rows *sql.Rows) (model.Vehicle, error) { return scanOne(rows) }

func scanOne(s scanner) (model.Vehicle, error) {
	var (
		v        model.Vehicle
		status   sql.NullInt64
		hasImage int64
	)
	if err := s.Scan(&v.NomorPlat, &v.Model, &v.Warna, &v.Tahun, &status, &hasImage); err != nil {
		return v, err
	}
	v.StatusKetersediaan = status.Valid && status.Int64 != 0
	v.HasImage = hasImage != 0
	return v, nil
}

func (r *repo) Colors(ctx context.Context) ([]string, error) {
	const q = `
		SELECT DISTINCT Warna
		FROM Mobil
		ORDER BY Warna`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *repo) Years(ctx context.Context) ([]int, error) {
	const q = `
		SELECT DISTINCT Tahun
		FROM Mobil
		ORDER BY Tahun`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	return out, rows.Err()
}

func (r *repo) Available(ctx context.Context) ([]model.Vehicle, error) {
	const q = `
		SELECT ` + selectCols + `
		FROM Mobil
		WHERE StatusKetersediaan = 1
		ORDER BY NomorPlat`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Vehicle
	for rows.Next() {
		v, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, plate string) (*model.Vehicle, error) {
	const q = `
		SELECT ` + selectCols + `
		FROM Mobil
		WHERE NomorPlat = ?`
	v, err := scanOne(r.db.QueryRowContext(ctx, q, plate))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, mutation.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *repo) Create(ctx context.Context, v model.Vehicle) error {
	const q = `
		INSERT INTO Mobil (NomorPlat, Model, Warna, Tahun, StatusKetersediaan)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, v.NomorPlat, v.Model, v.Warna, v.Tahun, boolInt(v.StatusKetersediaan))
	return mutation.Classify(err)
}

// Update rewrites the row keyed by originalPlate. A changed plate cascades
// into Peminjaman.
func (r *repo) Update(ctx context.Context, originalPlate string, v model.Vehicle) error {
	const q = `
		UPDATE Mobil
		SET NomorPlat = ?, Model = ?, Warna = ?, Tahun = ?, StatusKetersediaan = ?
		WHERE NomorPlat = ?`
	res, err := r.db.ExecContext(ctx, q, v.NomorPlat, v.Model, v.Warna, v.Tahun, boolInt(v.StatusKetersediaan), originalPlate)
	if err != nil {
		return mutation.Classify(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return mutation.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, plates []string, p mutation.Policy) (mutation.DeleteResult, error) {
	const q = `DELETE FROM Mobil WHERE NomorPlat = ?`
	return mutation.DeleteKeys(ctx, r.db, q, plates, p)
}

func (r *repo) SetImage(ctx context.Context, plate string, img []byte) error {
	const q = `
		UPDATE Mobil
		SET Gambar = ?
		WHERE NomorPlat = ?`
	res, err := r.db.ExecContext(ctx, q, img, plate)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return mutation.ErrNotFound
	}
	return nil
}

// Image returns the stored picture, nil when the car has none.
func (r *repo) Image(ctx context.Context, plate string) ([]byte, error) {
	const q = `
		SELECT Gambar
		FROM Mobil
		WHERE NomorPlat = ?`
	var img []byte
	err := r.db.QueryRowContext(ctx, q, plate).Scan(&img)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mutation.ErrNotFound
	}
	return img, err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
