package customer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zirachw/CarGoOwner/model"
	"github.com/zirachw/CarGoOwner/repository/customer"
	"github.com/zirachw/CarGoOwner/util/database/dbtest"
	"github.com/zirachw/CarGoOwner/util/listing"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

var budi = model.Customer{
	NIK:         "1234567890123456",
	Nama:        "Budi Santoso",
	Kontak:      "081234567890",
	Alamat:      "Jl. Merdeka No. 1",
	CreditPoint: model.DefaultCreditPoint,
}

func TestCreateThenFirstPage(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	r := customer.New(db)

	require.NoError(t, r.Create(ctx, budi))
	page, err := r.List(ctx, model.CustomerFilter{}, listing.Request{Page: 1, PerPage: 10})
	require.NoError(t, err)

	n := 0
	for _, c := range page.Items {
		if c.NIK == budi.NIK {
			n++
		}
	}
	require.Equal(t, 1, n)

	require.ErrorIs(t, r.Create(ctx, budi), mutation.ErrDuplicate)
	require.Equal(t, 1, dbtest.Count(t, db, "Pelanggan"))
}

func TestUpdateKeepsCreditUnlessSet(t *testing.T) {
	ctx := context.Background()
	r := customer.New(dbtest.New(t))
	require.NoError(t, r.Create(ctx, budi))

	edited := budi
	edited.NIK = "6543210987654321"
	edited.CreditPoint = 5
	require.NoError(t, r.Update(ctx, budi.NIK, edited, false))

	got, err := r.Detail(ctx, edited.NIK)
	require.NoError(t, err)
	require.Equal(t, model.DefaultCreditPoint, got.CreditPoint)

	require.NoError(t, r.Update(ctx, edited.NIK, edited, true))
	got, err = r.Detail(ctx, edited.NIK)
	require.NoError(t, err)
	require.Equal(t, 5, got.CreditPoint)

	_, err = r.Detail(ctx, budi.NIK)
	require.ErrorIs(t, err, mutation.ErrNotFound)
}

func TestBorrowingFilterAndAvailable(t *testing.T) {
	ctx := context.Background()
	r := customer.New(dbtest.New(t))
	require.NoError(t, r.Create(ctx, budi))
	other := budi
	other.NIK = "1111222233334444"
	other.StatusPinjam = true
	require.NoError(t, r.Create(ctx, other))

	yes := true
	page, err := r.List(ctx, model.CustomerFilter{Borrowing: &yes}, listing.Request{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, other.NIK, page.Items[0].NIK)

	free, err := r.Available(ctx)
	require.NoError(t, err)
	require.Len(t, free, 1)
	require.Equal(t, budi.NIK, free[0].NIK)
}

func TestDeleteEmptySelection(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	r := customer.New(db)
	require.NoError(t, r.Create(ctx, budi))

	res, err := r.Delete(ctx, nil, mutation.Atomic)
	require.NoError(t, err)
	require.Equal(t, mutation.NothingSelected, res.Notice)
	require.Equal(t, 1, dbtest.Count(t, db, "Pelanggan"))
}
