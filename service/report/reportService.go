package reportsvc

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/zirachw/CarGoOwner/model"
	"github.com/zirachw/CarGoOwner/util/listing"
)

const PerPage = 10

type VehicleRepo interface {
	List(ctx context.Context, f model.VehicleFilter, req listing.Request) (listing.Page[model.Vehicle], error)
}

type Repo interface {
	History(ctx context.Context, month int, req listing.Request) (listing.Page[model.Rental], error)
	Revenue(ctx context.Context, month int, req listing.Request) (listing.Page[model.Rental], error)
	RevenueAll(ctx context.Context, month int) ([]model.Rental, error)
	RevenueTotal(ctx context.Context, month int) (int64, error)
	PaymentMonths(ctx context.Context) ([]int, error)
}

// Revenue is one page of paid rentals plus the total of the whole filter.
type Revenue struct {
	listing.Page[model.Rental]
	Total int64 `json:"total"`
}

type Service interface {
	Availability(ctx context.Context, f model.VehicleFilter, req listing.Request) (listing.Page[model.Vehicle], error)
	// History and Revenue take a month 1..12; 0 means every month.
	History(ctx context.Context, month int, req listing.Request) (listing.Page[model.Rental], error)
	Revenue(ctx context.Context, month int, req listing.Request) (*Revenue, error)
	Months(ctx context.Context) ([]model.Month, error)
	// ExportRevenue writes the filtered revenue table as an .xlsx workbook.
	ExportRevenue(ctx context.Context, month int, w io.Writer) error
}

type service struct {
	vr VehicleRepo
	r  Repo
}

func New(vr VehicleRepo, r Repo) Service { return &service{vr: vr, r: r} }

func (s *service) Availability(ctx context.Context, f model.VehicleFilter, req listing.Request) (listing.Page[model.Vehicle], error) {
	return s.vr.List(ctx, f, req)
}

func (s *service) History(ctx context.Context, month int, req listing.Request) (listing.Page[model.Rental], error) {
	return s.r.History(ctx, month, req)
}

func (s *service) Revenue(ctx context.Context, month int, req listing.Request) (*Revenue, error) {
	page, err := s.r.Revenue(ctx, month, req)
	if err != nil {
		return nil, err
	}
	total, err := s.r.RevenueTotal(ctx, month)
	if err != nil {
		return nil, err
	}
	return &Revenue{Page: page, Total: total}, nil
}

func (s *service) Months(ctx context.Context) ([]model.Month, error) {
	ms, err := s.r.PaymentMonths(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Month, 0, len(ms))
	for _, m := range ms {
		if m < 1 || m > 12 {
			continue
		}
		out = append(out, model.Month{Number: m, Label: model.MonthNames[m-1]})
	}
	return out, nil
}

const revenueSheet = "Pendapatan"

func (s *service) ExportRevenue(ctx context.Context, month int, w io.Writer) error {
	rows, err := s.r.RevenueAll(ctx, month)
	if err != nil {
		return err
	}
	total, err := s.r.RevenueTotal(ctx, month)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", revenueSheet); err != nil {
		return err
	}

	header := make([]any, len(model.RevenueColumns))
	for i, c := range model.RevenueColumns {
		header[i] = c.Label
	}
	if err := f.SetSheetRow(revenueSheet, "A1", &header); err != nil {
		return err
	}

	for i, cells := range listing.RenderAll(model.RevenueColumns, rows, model.RevenueRow) {
		vals := make([]any, len(cells))
		for j, c := range cells {
			vals[j] = c.Text
		}
		// amounts stay numeric so the sheet can sum them
		vals[len(vals)-1] = rows[i].BesarPembayaran
		if err := f.SetSheetRow(revenueSheet, fmt.Sprintf("A%d", i+2), &vals); err != nil {
			return err
		}
	}

	last := len(rows) + 2
	if err := f.SetSheetRow(revenueSheet, fmt.Sprintf("E%d", last), &[]any{"Total", total}); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(revenueSheet, 1, 1, style); err != nil {
		return err
	}
	if err := f.SetColWidth(revenueSheet, "B", "F", 22); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
