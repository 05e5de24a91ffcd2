package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind says how a column's raw value is displayed.
type Kind int

const (
	Text Kind = iota
	Number
	Currency
	Date
	Status
)

// Badge holds the two labels of a status column.
type Badge struct {
	On  string
	Off string
}

var (
	Availability = Badge{On: "Tersedia", Off: "Tidak Tersedia"}
	Done         = Badge{On: "Sudah", Off: "Belum"}
	Payment      = Badge{On: "Lunas", Off: "Belum Lunas"}
	Borrowing    = Badge{On: "Meminjam", Off: "Tidak Meminjam"}
)

// Column annotates one position of a result row.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Kind  Kind   `json:"-"`
	Badge Badge  `json:"-"`
}

// Cell is one rendered value. Status cells carry On; Unset marks a status
// that was NULL in the store and got the Off label.
type Cell struct {
	Text   string `json:"text"`
	Status bool   `json:"status,omitempty"`
	On     bool   `json:"on,omitempty"`
	Unset  bool   `json:"unset,omitempty"`
}

const (
	isoDate     = "2006-01-02"
	displayDate = "02 Jan 2006"
	empty       = "-"
)

var rupiah = message.NewPrinter(language.Indonesian)

// Render turns one row into display cells, position by position. Extra
// values beyond the annotated columns are dropped.
func Render(cols []Column, row []any) []Cell {
	out := make([]Cell, len(cols))
	for i, col := range cols {
		var v any
		if i < len(row) {
			v = row[i]
		}
		out[i] = renderCell(col, v)
	}
	return out
}

// RenderAll renders every row produced by rowFn.
func RenderAll[T any](cols []Column, items []T, rowFn func(T) []any) [][]Cell {
	out := make([][]Cell, 0, len(items))
	for _, it := range items {
		out = append(out, Render(cols, rowFn(it)))
	}
	return out
}

func renderCell(col Column, v any) Cell {
	v = deref(v)
	switch col.Kind {
	case Status:
		on, unset := truthy(v)
		label := col.Badge.Off
		if on {
			label = col.Badge.On
		}
		return Cell{Text: label, Status: true, On: on, Unset: unset}
	case Currency:
		n, ok := toInt(v)
		if !ok {
			return Cell{Text: empty}
		}
		return Cell{Text: FormatRupiah(n)}
	case Date:
		return Cell{Text: formatDate(v)}
	case Number:
		if v == nil {
			return Cell{Text: empty}
		}
		if n, ok := toInt(v); ok {
			return Cell{Text: strconv.FormatInt(n, 10)}
		}
		return Cell{Text: fmt.Sprint(v)}
	default:
		if v == nil {
			return Cell{Text: empty}
		}
		if b, ok := v.([]byte); ok {
			return Cell{Text: string(b)}
		}
		return Cell{Text: fmt.Sprint(v)}
	}
}

// FormatRupiah prints n with Indonesian digit grouping, e.g. "Rp 1.500.000".
func FormatRupiah(n int64) string {
	return rupiah.Sprintf("Rp %d", n)
}

// truthy reports whether a status value is the positive state. Only 1/true
// is positive; NULL is negative and flagged unset.
func truthy(v any) (on, unset bool) {
	switch x := v.(type) {
	case nil:
		return false, true
	case bool:
		return x, false
	case string:
		return strings.TrimSpace(x) == "1", false
	}
	if n, ok := toInt(v); ok {
		return n == 1, false
	}
	return false, false
}

func toInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case float64:
		return int64(x), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		return n, err == nil
	case []byte:
		n, err := strconv.ParseInt(strings.TrimSpace(string(x)), 10, 64)
		return n, err == nil
	}
	return 0, false
}

func formatDate(v any) string {
	switch x := v.(type) {
	case nil:
		return empty
	case time.Time:
		return x.Format(displayDate)
	case string:
		if x == "" {
			return empty
		}
		t, err := time.Parse(isoDate, x)
		if err != nil {
			return x
		}
		return t.Format(displayDate)
	case []byte:
		return formatDate(string(x))
	}
	return fmt.Sprint(v)
}

func deref(v any) any {
	switch x := v.(type) {
	case *string:
		if x == nil {
			return nil
		}
		return *x
	case *int64:
		if x == nil {
			return nil
		}
		return *x
	case *bool:
		if x == nil {
			return nil
		}
		return *x
	}
	return v
}
