package customersvc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zirachw/CarGoOwner/model"
	customerrepo "github.com/zirachw/CarGoOwner/repository/customer"
	customersvc "github.com/zirachw/CarGoOwner/service/customer"
	"github.com/zirachw/CarGoOwner/util/database/dbtest"
	"github.com/zirachw/CarGoOwner/util/listing"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

var budi = model.CustomerForm{
	NIK:    "1234567890123456",
	Nama:   "Budi Santoso",
	Kontak: "081234567890",
	Alamat: "Jl. Merdeka No. 1",
}

func TestCreate_DefaultsAndDuplicate(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	s := customersvc.New(customerrepo.New(db), mutation.NewValidator(), mutation.Atomic)

	c, err := s.Create(ctx, budi)
	require.NoError(t, err)
	require.Equal(t, 100, c.CreditPoint)
	require.False(t, c.StatusPinjam)

	got, err := s.Detail(ctx, budi.NIK)
	require.NoError(t, err)
	require.Equal(t, "Budi Santoso", got.Nama)

	_, err = s.Create(ctx, budi)
	require.ErrorIs(t, err, mutation.ErrDuplicate)
	require.Equal(t, 1, dbtest.Count(t, db, "Pelanggan"))
}

func TestCreate_InvalidNIKWritesNothing(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	s := customersvc.New(customerrepo.New(db), mutation.NewValidator(), mutation.Atomic)

	form := budi
	form.NIK = "12345"
	_, err := s.Create(ctx, form)

	fe, ok := mutation.AsFieldErrors(err)
	require.True(t, ok)
	require.Contains(t, fe, "nik")
	require.Zero(t, dbtest.Count(t, db, "Pelanggan"))
}

func TestCreate_FieldRules(t *testing.T) {
	s := customersvc.New(customerrepo.New(dbtest.New(t)), mutation.NewValidator(), mutation.Atomic)

	form := budi
	form.Kontak = "0812-3456"
	form.Alamat = "Jalan Panjang Sekali Nomor Seratus Dua Puluh"
	form.Nama = " "
	_, err := s.Create(context.Background(), form)

	fe, ok := mutation.AsFieldErrors(err)
	require.True(t, ok)
	require.Len(t, fe, 3)
}

func TestUpdate_ChangesKeyAndListShowsOnce(t *testing.T) {
	ctx := context.Background()
	s := customersvc.New(customerrepo.New(dbtest.New(t)), mutation.NewValidator(), mutation.Atomic)
	_, err := s.Create(ctx, budi)
	require.NoError(t, err)

	form := budi
	form.NIK = "6543210987654321"
	form.Kontak = "089999"
	c, err := s.Update(ctx, budi.NIK, form)
	require.NoError(t, err)
	require.Equal(t, "089999", c.Kontak)

	page, err := s.List(ctx, model.CustomerFilter{}, listing.Request{Page: 1, PerPage: customersvc.PerPage})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, form.NIK, page.Items[0].NIK)

	_, err = s.Update(ctx, budi.NIK, budi)
	require.ErrorIs(t, err, mutation.ErrNotFound)
}

func TestDelete_NothingSelected(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	s := customersvc.New(customerrepo.New(db), mutation.NewValidator(), mutation.Atomic)
	_, err := s.Create(ctx, budi)
	require.NoError(t, err)

	res, err := s.Delete(ctx, []string{})
	require.NoError(t, err)
	require.Equal(t, mutation.NothingSelected, res.Notice)
	require.Equal(t, 1, dbtest.Count(t, db, "Pelanggan"))
}
