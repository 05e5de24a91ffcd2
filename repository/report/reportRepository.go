package report

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zirachw/CarGoOwner/model"
	"github.com/zirachw/CarGoOwner/repository/rental"
	"github.com/zirachw/CarGoOwner/util/listing"
)

type Repo interface {
	History(ctx context.Context, month int, req listing.Request) (listing.Page[model.Rental], error)
	Revenue(ctx context.Context, month int, req listing.Request) (listing.Page[model.Rental], error)
	RevenueAll(ctx context.Context, month int) ([]model.Rental, error)
	RevenueTotal(ctx context.Context, month int) (int64, error)
	PaymentMonths(ctx context.Context) ([]int, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

var historySpec = listing.Spec{
	Columns: rental.ListSpec.Columns,
	From:    rental.ListSpec.From,
	OrderBy: "p.TanggalPeminjaman DESC, p.ID DESC",
	Filters: []listing.Filter{
		{Name: "month", Clause: "strftime('%m', p.TanggalPeminjaman) = ?"},
	},
}

var revenueSpec = listing.Spec{
	Columns: rental.ListSpec.Columns,
	From:    rental.ListSpec.From,
	Where:   "p.StatusPembayaran = 1",
	OrderBy: "p.TanggalPembayaran DESC, p.ID DESC",
	Filters: []listing.Filter{
		{Name: "month", Clause: "strftime('%m', p.TanggalPembayaran) = ?"},
	},
}

// monthFilter binds month 1..12 as "01".."12"; anything else means all months.
func monthFilter(month int) listing.Filters {
	if month < 1 || month > 12 {
		return listing.Filters{}
	}
	return listing.Filters{"month": fmt.Sprintf("%02d", month)}
}

func (r *repo) History(ctx context.Context, month int, req listing.Request) (listing.Page[model.Rental], error) {
	return listing.Fetch(ctx, r.db, historySpec, monthFilter(month), req, rental.ScanRows)
}

func (r *repo) Revenue(ctx context.Context, month int, req listing.Request) (listing.Page[model.Rental], error) {
	return listing.Fetch(ctx, r.db, revenueSpec, monthFilter(month), req, rental.ScanRows)
}

// RevenueAll returns every row of the revenue table, for export.
func (r *repo) RevenueAll(ctx context.Context, month int) ([]model.Rental, error) {
	total, err := r.count(ctx, month)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return []model.Rental{}, nil
	}
	page, err := r.Revenue(ctx, month, listing.Request{Page: 1, PerPage: int(total)})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (r *repo) count(ctx context.Context, month int) (int64, error) {
	count, _, err := listing.Build(revenueSpec, monthFilter(month), listing.Request{Page: 1, PerPage: 1})
	if err != nil {
		return 0, err
	}
	var n int64
	err = r.db.QueryRowContext(ctx, count.SQL, count.Args...).Scan(&n)
	return n, err
}

func (r *repo) RevenueTotal(ctx context.Context, month int) (int64, error) {
	const q = `
		SELECT COALESCE(SUM(BesarPembayaran), 0)
		FROM Peminjaman
		WHERE StatusPembayaran = 1
		AND (? = '' OR strftime('%m', TanggalPembayaran) = ?)`
	m := ""
	if v, ok := monthFilter(month)["month"]; ok {
		m = v.(string)
	}
	var total int64
	err := r.db.QueryRowContext(ctx, q, m, m).Scan(&total)
	return total, err
}

// PaymentMonths lists the distinct months that have a payment, ascending.
func (r *repo) PaymentMonths(ctx context.Context) ([]int, error) {
	const q = `
		SELECT DISTINCT CAST(strftime('%m', TanggalPembayaran) AS INTEGER) AS m
		FROM Peminjaman
		WHERE StatusPembayaran = 1
		AND TanggalPembayaran IS NOT NULL
		ORDER BY m`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var m sql.NullInt64
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		if m.Valid {
			out = append(out, int(m.Int64))
		}
	}
	return out, rows.Err()
}
