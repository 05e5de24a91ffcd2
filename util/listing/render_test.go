package listing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_Kinds(t *testing.T) {
	cols := []Column{
		{Key: "plate", Kind: Text},
		{Key: "year", Kind: Number},
		{Key: "amount", Kind: Currency},
		{Key: "date", Kind: Date},
		{Key: "status", Kind: Status, Badge: Availability},
	}
	cells := Render(cols, []any{"B 1234 ABC", int64(2021), int64(1500000), "2024-12-07", int64(1)})

	require.Equal(t, "B 1234 ABC", cells[0].Text)
	require.Equal(t, "2021", cells[1].Text)
	require.Equal(t, "Rp 1.500.000", cells[2].Text)
	require.Equal(t, "07 Dec 2024", cells[3].Text)
	require.Equal(t, Cell{Text: "Tersedia", Status: true, On: true}, cells[4])
}

func TestRender_StatusTwoStates(t *testing.T) {
	col := []Column{{Kind: Status, Badge: Done}}

	require.Equal(t, "Sudah", Render(col, []any{int64(1)})[0].Text)
	require.Equal(t, "Sudah", Render(col, []any{true})[0].Text)
	require.Equal(t, "Belum", Render(col, []any{int64(0)})[0].Text)
	require.Equal(t, "Belum", Render(col, []any{int64(7)})[0].Text)
	require.Equal(t, "Belum", Render(col, []any{"0"})[0].Text)

	null := Render(col, []any{nil})[0]
	require.Equal(t, "Belum", null.Text)
	require.False(t, null.On)
	require.True(t, null.Unset)

	var p *int64
	require.True(t, Render(col, []any{p})[0].Unset)
}

func TestRender_NullsAndShortRows(t *testing.T) {
	cols := []Column{{Kind: Date}, {Kind: Text}, {Kind: Currency}}
	var ret *string
	cells := Render(cols, []any{ret})

	require.Equal(t, "-", cells[0].Text)
	require.Equal(t, "-", cells[1].Text)
	require.Equal(t, "-", cells[2].Text)
}

func TestRenderAll(t *testing.T) {
	type car struct {
		plate string
		avail bool
	}
	cols := []Column{{Kind: Text}, {Kind: Status, Badge: Availability}}
	out := RenderAll(cols, []car{{"B 1 A", true}, {"D 2 B", false}}, func(c car) []any {
		return []any{c.plate, c.avail}
	})

	require.Len(t, out, 2)
	require.Equal(t, "Tidak Tersedia", out[1][1].Text)
}
