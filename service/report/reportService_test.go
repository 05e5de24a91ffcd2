package reportsvc_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/zirachw/CarGoOwner/model"
	reportsvc "github.com/zirachw/CarGoOwner/service/report"
	"github.com/zirachw/CarGoOwner/util/listing"
)

type repoMock struct {
	rows   []model.Rental
	total  int64
	months []int
}

func (m *repoMock) History(ctx context.Context, month int, req listing.Request) (listing.Page[model.Rental], error) {
	return listing.Page[model.Rental]{Items: m.rows, Meta: listing.BuildMeta(int64(len(m.rows)), req)}, nil
}
func (m *repoMock) Revenue(ctx context.Context, month int, req listing.Request) (listing.Page[model.Rental], error) {
	return listing.Page[model.Rental]{Items: m.rows, Meta: listing.BuildMeta(int64(len(m.rows)), req)}, nil
}
func (m *repoMock) RevenueAll(ctx context.Context, month int) ([]model.Rental, error) {
	return m.rows, nil
}
func (m *repoMock) RevenueTotal(ctx context.Context, month int) (int64, error) { return m.total, nil }
func (m *repoMock) PaymentMonths(ctx context.Context) ([]int, error)          { return m.months, nil }

type vehicleMock struct{}

func (vehicleMock) List(ctx context.Context, f model.VehicleFilter, req listing.Request) (listing.Page[model.Vehicle], error) {
	return listing.Page[model.Vehicle]{}, nil
}

func paid(id int64, amount int64) model.Rental {
	d := "2024-03-02"
	return model.Rental{
		ID: id, Nama: "Budi", TanggalPeminjaman: "2024-03-01",
		TanggalPengembalian: &d, TanggalPembayaran: &d,
		BesarPembayaran: amount, StatusPembayaran: true,
	}
}

func TestRevenueAndMonths(t *testing.T) {
	m := &repoMock{rows: []model.Rental{paid(1, 500000)}, total: 500000, months: []int{1, 3, 12}}
	s := reportsvc.New(vehicleMock{}, m)

	rev, err := s.Revenue(context.Background(), 3, listing.Request{Page: 1, PerPage: reportsvc.PerPage})
	require.NoError(t, err)
	require.EqualValues(t, 500000, rev.Total)
	require.Len(t, rev.Items, 1)

	months, err := s.Months(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Month{{Number: 1, Label: "Jan"}, {Number: 3, Label: "Mar"}, {Number: 12, Label: "Des"}}, months)
}

func TestExportRevenue(t *testing.T) {
	m := &repoMock{rows: []model.Rental{paid(1, 500000), paid(2, 250000)}, total: 750000}
	s := reportsvc.New(vehicleMock{}, m)

	var buf bytes.Buffer
	require.NoError(t, s.ExportRevenue(context.Background(), 0, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Pendapatan")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, "ID", rows[0][0])
	require.Equal(t, "Besar Pembayaran", rows[0][5])
	require.Equal(t, "Budi", rows[1][1])
	require.Equal(t, "02 Mar 2024", rows[1][4])
	require.Equal(t, "500000", rows[1][5])
	require.Equal(t, "Total", rows[3][4])
	require.Equal(t, "750000", rows[3][5])
}
