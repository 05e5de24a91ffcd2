// model/vehicle.go
package model

import (
	"strconv"
	"strings"

	"github.com/zirachw/CarGoOwner/util/listing"
)

// Vehicle is a row of Mobil. The image blob is served separately.
type Vehicle struct {
	NomorPlat          string `json:"nomor_plat"`
	Model              string `json:"model"`
	Warna              string `json:"warna"`
	Tahun              int    `json:"tahun"`
	StatusKetersediaan bool   `json:"status_ketersediaan"`
	HasImage           bool   `json:"has_image"`
}

// VehicleForm is the add/edit dialog payload, every field as typed text.
type VehicleForm struct {
	NomorPlat          string `json:"nomor_plat" form:"nomor_plat" validate:"required,plate"`
	Model              string `json:"model" form:"model" validate:"required,max=50"`
	Warna              string `json:"warna" form:"warna" validate:"required,max=20"`
	Tahun              string `json:"tahun" form:"tahun" validate:"required,len=4,digits"`
	StatusKetersediaan string `json:"status_ketersediaan" form:"status_ketersediaan" validate:"required,oneof=0 1"`
}

// Normalize trims every field and upper-cases the plate.
func (f VehicleForm) Normalize() VehicleForm {
	f.NomorPlat = strings.ToUpper(strings.TrimSpace(f.NomorPlat))
	f.Model = strings.TrimSpace(f.Model)
	f.Warna = strings.TrimSpace(f.Warna)
	f.Tahun = strings.TrimSpace(f.Tahun)
	f.StatusKetersediaan = strings.TrimSpace(f.StatusKetersediaan)
	return f
}

// Vehicle converts an already validated form.
func (f VehicleForm) Vehicle() Vehicle {
	year, _ := strconv.Atoi(f.Tahun)
	return Vehicle{
		NomorPlat:          f.NomorPlat,
		Model:              f.Model,
		Warna:              f.Warna,
		Tahun:              year,
		StatusKetersediaan: f.StatusKetersediaan == "1",
	}
}

// VehicleFilter narrows the vehicle grid. Nil fields are not applied.
type VehicleFilter struct {
	Warna     *string
	Tahun     *int
	Available *bool
}

var VehicleColumns = []listing.Column{
	{Key: "nomor_plat", Label: "Nomor Plat", Kind: listing.Text},
	{Key: "model", Label: "Model", Kind: listing.Text},
	{Key: "warna", Label: "Warna", Kind: listing.Text},
	{Key: "tahun", Label: "Tahun", Kind: listing.Number},
	{Key: "status_ketersediaan", Label: "Status", Kind: listing.Status, Badge: listing.Availability},
}

func (v Vehicle) Row() []any {
	return []any{v.NomorPlat, v.Model, v.Warna, v.Tahun, v.StatusKetersediaan}
}
