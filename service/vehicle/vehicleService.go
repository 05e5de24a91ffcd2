package vehiclesvc

import (
	"bytes"
	"context"
	"io"

	"github.com/disintegration/imaging"
	"github.com/go-playground/validator/v10"

	"github.com/zirachw/CarGoOwner/model"
	"github.com/zirachw/CarGoOwner/util/listing"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

// PerPage is the card grid size.
const PerPage = 6

// Stored pictures are fit into this box and re-encoded as JPEG.
const (
	ImageWidth  = 800
	ImageHeight = 600
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

type Service interface {
	List(ctx context.Context, f model.VehicleFilter, req listing.Request) (listing.Page[model.Vehicle], error)
	Colors(ctx context.Context) ([]string, error)
	Years(ctx context.Context) ([]int, error)
	Available(ctx context.Context) ([]model.Vehicle, error)
	Detail(ctx context.Context, plate string) (*model.Vehicle, error)

	Create(ctx context.Context, form model.VehicleForm) (*model.Vehicle, error)
	// Update edits the car that had originalPlate when the form was opened.
	Update(ctx context.Context, originalPlate string, form model.VehicleForm) (*model.Vehicle, error)
	Delete(ctx context.Context, plates []string) (mutation.DeleteResult, error)

	SetImage(ctx context.Context, plate string, src io.Reader) error
	Image(ctx context.Context, plate string) ([]byte, error)
}

type service struct {
	r      Repo
	v      *validator.Validate
	policy mutation.Policy
}

func New(r Repo, v *validator.Validate, p mutation.Policy) Service {
	return &service{r: r, v: v, policy: p}
}

func (s *service) List(ctx context.Context, f model.VehicleFilter, req listing.Request) (listing.Page[model.Vehicle], error) {
	return s.r.List(ctx, f, req)
}
func (s *service) Colors(ctx context.Context) ([]string, error)         { return s.r.Colors(ctx) }
func (s *service) Years(ctx context.Context) ([]int, error)             { return s.r.Years(ctx) }
func (s *service) Available(ctx context.Context) ([]model.Vehicle, error) { return s.r.Available(ctx) }
func (s *service) Detail(ctx context.Context, plate string) (*model.Vehicle, error) {
	return s.r.Detail(ctx, plate)
}

func (s *service) Create(ctx context.Context, form model.VehicleForm) (*model.Vehicle, error) {
	form = form.Normalize()
	if err := mutation.Check(s.v, form); err != nil {
		return nil, err
	}
	v := form.Vehicle()
	if err := s.r.Create(ctx, v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *service) Update(ctx context.Context, originalPlate string, form model.VehicleForm) (*model.Vehicle, error) {
	form = form.Normalize()
	if err := mutation.Check(s.v, form); err != nil {
		return nil, err
	}
	v := form.Vehicle()
	if err := s.r.Update(ctx, originalPlate, v); err != nil {
		return nil, err
	}
	return s.r.Detail(ctx, v.NomorPlat)
}

func (s *service) Delete(ctx context.Context, plates []string) (mutation.DeleteResult, error) {
	return s.r.Delete(ctx, plates, s.policy)
}

// SetImage decodes src, fits it into ImageWidth x ImageHeight and stores
// it as JPEG.
func (s *service) SetImage(ctx context.Context, plate string, src io.Reader) error {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		fe := mutation.FieldErrors{}
		fe.Add("image", "is not a supported image")
		return fe
	}
	img = imaging.Fit(img, ImageWidth, ImageHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return err
	}
	return s.r.SetImage(ctx, plate, buf.Bytes())
}

// Image returns the stored JPEG. A car without a picture is ErrNotFound.
func (s *service) Image(ctx context.Context, plate string) ([]byte, error) {
	img, err := s.r.Image(ctx, plate)
	if err != nil {
		return nil, err
	}
	if len(img) == 0 {
		return nil, mutation.ErrNotFound
	}
	return img, nil
}
