package model

import (
	"strconv"
	"strings"

	"github.com/zirachw/CarGoOwner/util/listing"
)

const DefaultCreditPoint = 100

// Customer is a row of Pelanggan.
type Customer struct {
	NIK          string `json:"nik"`
	Nama         string `json:"nama"`
	Kontak       string `json:"kontak"`
	Alamat       string `json:"alamat"`
	CreditPoint  int    `json:"credit_point"`
	StatusPinjam bool   `json:"status_pinjam"`
}

// CustomerForm is the add/edit dialog payload. CreditPoint and StatusPinjam
// are optional; StatusPinjam is only honoured on create.
type CustomerForm struct {
	NIK          string `json:"nik" form:"nik" validate:"required,nik"`
	Nama         string `json:"nama" form:"nama" validate:"required,max=50"`
	Kontak       string `json:"kontak" form:"kontak" validate:"required,digits,max=15"`
	Alamat       string `json:"alamat" form:"alamat" validate:"required,max=30"`
	CreditPoint  string `json:"credit_point" form:"credit_point" validate:"omitempty,digits,max=6"`
	StatusPinjam string `json:"status_pinjam" form:"status_pinjam" validate:"omitempty,oneof=0 1"`
}

func (f CustomerForm) Normalize() CustomerForm {
	f.NIK = strings.TrimSpace(f.NIK)
	f.Nama = strings.TrimSpace(f.Nama)
	f.Kontak = strings.TrimSpace(f.Kontak)
	f.Alamat = strings.TrimSpace(f.Alamat)
	f.CreditPoint = strings.TrimSpace(f.CreditPoint)
	f.StatusPinjam = strings.TrimSpace(f.StatusPinjam)
	return f
}

// Customer converts an already validated form, applying the defaults.
func (f CustomerForm) Customer() Customer {
	c := Customer{
		NIK:          f.NIK,
		Nama:         f.Nama,
		Kontak:       f.Kontak,
		Alamat:       f.Alamat,
		CreditPoint:  DefaultCreditPoint,
		StatusPinjam: f.StatusPinjam == "1",
	}
	if n, err := strconv.Atoi(f.CreditPoint); err == nil {
		c.CreditPoint = n
	}
	return c
}

// HasCreditPoint reports whether the form sets the credit point explicitly.
func (f CustomerForm) HasCreditPoint() bool { return f.CreditPoint != "" }

type CustomerFilter struct {
	Borrowing *bool
}

var CustomerColumns = []listing.Column{
	{Key: "nik", Label: "NIK", Kind: listing.Text},
	{Key: "nama", Label: "Nama", Kind: listing.Text},
	{Key: "kontak", Label: "Kontak", Kind: listing.Text},
	{Key: "alamat", Label: "Alamat", Kind: listing.Text},
	{Key: "credit_point", Label: "Credit Point", Kind: listing.Number},
	{Key: "status_pinjam", Label: "Status", Kind: listing.Status, Badge: listing.Borrowing},
}

func (c Customer) Row() []any {
	return []any{c.NIK, c.Nama, c.Kontak, c.Alamat, c.CreditPoint, c.StatusPinjam}
}
