package customersvc

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/zirachw/CarGoOwner/model"
	"github.com/zirachw/CarGoOwner/util/listing"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

const PerPage = 10

type Repo interface {
	List(ctx context.Context, f model.CustomerFilter, req listing.Request) (listing.Page[model.Customer], error)
	Available(ctx context.Context) ([]model.Customer, error)
	Detail(ctx context.Context, nik string) (*model.Customer, error)
	Create(ctx context.Context, c model.Customer) error
	Update(ctx context.Context, originalNIK string, c model.Customer, setCredit bool) error
	Delete(ctx context.Context, niks []string, p mutation.Policy) (mutation.DeleteResult, error)
}

type Service interface {
	List(ctx context.Context, f model.CustomerFilter, req listing.Request) (listing.Page[model.Customer], error)
	Available(ctx context.Context) ([]model.Customer, error)
	Detail(ctx context.Context, nik string) (*model.Customer, error)

	Create(ctx context.Context, form model.CustomerForm) (*model.Customer, error)
	Update(ctx context.Context, originalNIK string, form model.CustomerForm) (*model.Customer, error)
	Delete(ctx context.Context, niks []string) (mutation.DeleteResult, error)
}

type service struct {
	r      Repo
	v      *validator.Validate
	policy mutation.Policy
}

func New(r Repo, v *validator.Validate, p mutation.Policy) Service {
	return &service{r: r, v: v, policy: p}
}

func (s *service) List(ctx context.Context, f model.CustomerFilter, req listing.Request) (listing.Page[model.Customer], error) {
	return s.r.List(ctx, f, req)
}

func (s *service) Available(ctx context.Context) ([]model.Customer, error) {
	return s.r.Available(ctx)
}

func (s *service) Detail(ctx context.Context, nik string) (*model.Customer, error) {
	return s.r.Detail(ctx, nik)
}

func (s *service) Create(ctx context.Context, form model.CustomerForm) (*model.Customer, error) {
	form = form.Normalize()
	if err := mutation.Check(s.v, form); err != nil {
		return nil, err
	}
	c := form.Customer()
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *service) Update(ctx context.Context, originalNIK string, form model.CustomerForm) (*model.Customer, error) {
	form = form.Normalize()
	if err := mutation.Check(s.v, form); err != nil {
		return nil, err
	}
	c := form.Customer()
	if err := s.r.Update(ctx, originalNIK, c, form.HasCreditPoint()); err != nil {
		return nil, err
	}
	return s.r.Detail(ctx, c.NIK)
}

func (s *service) Delete(ctx context.Context, niks []string) (mutation.DeleteResult, error) {
	return s.r.Delete(ctx, niks, s.policy)
}
