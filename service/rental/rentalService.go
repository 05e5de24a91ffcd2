package rental

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/zirachw/CarGoOwner/model"
	rrepo "github.com/zirachw/CarGoOwner/repository/rental"
	"github.com/zirachw/CarGoOwner/util/listing"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

const PerPage = 10

// errors used by controllers

type ErrCode string

const (
	ErrCustomerNotFound   ErrCode = "CUSTOMER_NOT_FOUND"
	ErrVehicleNotFound    ErrCode = "VEHICLE_NOT_FOUND"
	ErrCustomerBorrowing  ErrCode = "CUSTOMER_BORROWING"
	ErrVehicleUnavailable ErrCode = "VEHICLE_UNAVAILABLE"
	ErrAlreadyReturned    ErrCode = "ALREADY_RETURNED"
	ErrAlreadyPaid        ErrCode = "ALREADY_PAID"
	ErrNotFound           ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	VehicleAvailable(ctx context.Context, tx *sql.Tx, plate string) (bool, error)
	CustomerBorrowing(ctx context.Context, tx *sql.Tx, nik string) (bool, error)
	SetVehicleAvailable(ctx context.Context, tx *sql.Tx, plate string, available bool) error
	SetCustomerBorrowing(ctx context.Context, tx *sql.Tx, nik string, borrowing bool) error

	Insert(ctx context.Context, tx *sql.Tx, n rrepo.NewRental) (int64, error)
	Get(ctx context.Context, tx *sql.Tx, id int64) (*model.Rental, error)
	MarkReturned(ctx context.Context, tx *sql.Tx, id int64, date string) error
	MarkPaid(ctx context.Context, tx *sql.Tx, id int64, date string) error
	Delete(ctx context.Context, ids []int64, p mutation.Policy) (mutation.DeleteResult, error)

	List(ctx context.Context, f model.RentalFilter, req listing.Request) (listing.Page[model.Rental], error)
}

type Service interface {
	List(ctx context.Context, f model.RentalFilter, req listing.Request) (listing.Page[model.Rental], error)
	Detail(ctx context.Context, id int64) (*model.Rental, error)

	// Book opens a rental and marks the car rented and the customer borrowing.
	Book(ctx context.Context, form model.BookingForm) (*model.Rental, error)

	// Return closes the rental and frees car and customer.
	Return(ctx context.Context, id int64, form model.EventForm) (*model.Rental, error)

	// Pay records the payment.
	Pay(ctx context.Context, id int64, form model.EventForm) (*model.Rental, error)

	Delete(ctx context.Context, ids []int64) (mutation.DeleteResult, error)
}

// ----- Service implementation -----

type service struct {
	db     *sql.DB
	r      Repo
	v      *validator.Validate
	policy mutation.Policy
	now    func() time.Time
}

func New(db *sql.DB, r Repo, v *validator.Validate, p mutation.Policy) Service {
	return &service{db: db, r: r, v: v, policy: p, now: time.Now}
}

func (s *service) List(ctx context.Context, f model.RentalFilter, req listing.Request) (listing.Page[model.Rental], error) {
	return s.r.List(ctx, f, req)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Rental, error) {
	rt, err := s.r.Get(ctx, nil, id)
	if errors.Is(err, mutation.ErrNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	return rt, err
}

func checkBooking(v *validator.Validate, f model.BookingForm) error {
	if err := mutation.Check(v, f); err != nil {
		return err
	}
	// ISO dates compare correctly as text
	fe := mutation.FieldErrors{}
	if f.TenggatPengembalian < f.TanggalPeminjaman {
		fe.Add("tenggat_pengembalian", "must not be before tanggal_peminjaman")
	}
	if f.TenggatPembayaran < f.TanggalPeminjaman {
		fe.Add("tenggat_pembayaran", "must not be before tanggal_peminjaman")
	}
	return fe.OrNil()
}

func (s *service) Book(ctx context.Context, form model.BookingForm) (_ *model.Rental, err error) {
	form = form.Normalize()
	if err := checkBooking(s.v, form); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	borrowing, err := s.r.CustomerBorrowing(ctx, tx, form.NIK)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrCustomerNotFound)
		}
		return nil, err
	}
	if borrowing {
		return nil, makeErr(ErrCustomerBorrowing)
	}

	available, err := s.r.VehicleAvailable(ctx, tx, form.NomorPlat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrVehicleNotFound)
		}
		return nil, err
	}
	if !available {
		return nil, makeErr(ErrVehicleUnavailable)
	}

	id, err := s.r.Insert(ctx, tx, rrepo.NewRental{
		NomorPlat:           form.NomorPlat,
		NIK:                 form.NIK,
		TanggalPeminjaman:   form.TanggalPeminjaman,
		TenggatPengembalian: form.TenggatPengembalian,
		TenggatPembayaran:   form.TenggatPembayaran,
		BesarPembayaran:     form.Amount(),
	})
	if err != nil {
		return nil, err
	}
	if err = s.r.SetVehicleAvailable(ctx, tx, form.NomorPlat, false); err != nil {
		return nil, err
	}
	if err = s.r.SetCustomerBorrowing(ctx, tx, form.NIK, true); err != nil {
		return nil, err
	}

	rt, err := s.r.Get(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return rt, nil
}

// eventDate returns the form date, today when empty. The date may not be
// before the borrow date.
func (s *service) eventDate(form model.EventForm, rt *model.Rental) (string, error) {
	form = form.Normalize()
	if err := mutation.Check(s.v, form); err != nil {
		return "", err
	}
	date := form.Tanggal
	if date == "" {
		date = s.now().Format(model.DateLayout)
	}
	if date < rt.TanggalPeminjaman {
		fe := mutation.FieldErrors{}
		fe.Add("tanggal", "must not be before tanggal_peminjaman")
		return "", fe
	}
	return date, nil
}

func (s *service) Return(ctx context.Context, id int64, form model.EventForm) (_ *model.Rental, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	rt, err := s.r.Get(ctx, tx, id)
	if err != nil {
		if errors.Is(err, mutation.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if rt.StatusPengembalian {
		return nil, makeErr(ErrAlreadyReturned)
	}
	date, err := s.eventDate(form, rt)
	if err != nil {
		return nil, err
	}

	if err = s.r.MarkReturned(ctx, tx, id, date); err != nil {
		return nil, err
	}
	if err = s.r.SetVehicleAvailable(ctx, tx, rt.NomorPlat, true); err != nil {
		return nil, err
	}
	if err = s.r.SetCustomerBorrowing(ctx, tx, rt.NIK, false); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	rt.TanggalPengembalian = &date
	rt.StatusPengembalian = true
	return rt, nil
}

func (s *service) Pay(ctx context.Context, id int64, form model.EventForm) (_ *model.Rental, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	rt, err := s.r.Get(ctx, tx, id)
	if err != nil {
		if errors.Is(err, mutation.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if rt.StatusPembayaran {
		return nil, makeErr(ErrAlreadyPaid)
	}
	date, err := s.eventDate(form, rt)
	if err != nil {
		return nil, err
	}

	if err = s.r.MarkPaid(ctx, tx, id, date); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	rt.TanggalPembayaran = &date
	rt.StatusPembayaran = true
	return rt, nil
}

func (s *service) Delete(ctx context.Context, ids []int64) (mutation.DeleteResult, error) {
	return s.r.Delete(ctx, ids, s.policy)
}
