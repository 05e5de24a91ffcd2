package mutation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type form struct {
	NIK    string `json:"nik" validate:"required,nik"`
	Plate  string `json:"plate" validate:"omitempty,plate"`
	Phone  string `json:"phone" validate:"required,digits"`
	Addr   string `json:"addr" validate:"required,max=30"`
	Year   string `json:"year" validate:"omitempty,len=4,digits"`
	Status string `json:"status" validate:"omitempty,oneof=0 1"`
	Date   string `json:"date" validate:"omitempty,isodate"`
}

func valid() form {
	return form{
		NIK:    "1234567890123456",
		Plate:  "B 1234 ABC",
		Phone:  "081234567890",
		Addr:   "Jl. Merdeka No. 1",
		Year:   "2021",
		Status: "1",
		Date:   "2024-12-07",
	}
}

func TestCheck_Valid(t *testing.T) {
	require.NoError(t, Check(NewValidator(), valid()))
}

func TestCheck_FieldErrors(t *testing.T) {
	v := NewValidator()
	f := form{
		NIK:    "12345",
		Plate:  "b1234abc",
		Phone:  "0812-3456",
		Addr:   "Jalan yang sangat panjang sekali melebihi batas",
		Year:   "21",
		Status: "2",
		Date:   "07/12/2024",
	}

	err := Check(v, f)
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	for _, k := range []string{"nik", "plate", "phone", "addr", "year", "status", "date"} {
		require.Contains(t, fe, k)
	}
	require.Equal(t, "must be exactly 16 digits", fe["nik"])
}

func TestCheck_Required(t *testing.T) {
	err := Check(NewValidator(), form{})
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	require.Equal(t, "is required", fe["nik"])
	require.Equal(t, "is required", fe["phone"])
	require.NotContains(t, fe, "plate")
}

func TestPlatePattern(t *testing.T) {
	v := NewValidator()
	for _, ok := range []string{"B 1 A", "AB 1234 XYZ", "D 55 KL"} {
		f := valid()
		f.Plate = ok
		require.NoError(t, Check(v, f), ok)
	}
	for _, bad := range []string{"ABC 1 A", "B 12345 A", "B 1234 ABCD", "B1234ABC", "b 1234 abc"} {
		f := valid()
		f.Plate = bad
		require.Error(t, Check(v, f), bad)
	}
}

func TestFieldErrors_Error(t *testing.T) {
	fe := FieldErrors{}
	require.NoError(t, fe.OrNil())

	fe.Add("b", "bad")
	fe.Add("a", "worse")
	fe.Add("a", "ignored")
	require.Equal(t, "validation failed: a: worse; b: bad", fe.Error())
	require.Error(t, fe.OrNil())
}
