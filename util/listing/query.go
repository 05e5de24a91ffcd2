// Package listing builds and runs the paginated, filterable record lists
// behind every screen: bound-parameter SELECT/COUNT statements, page-window
// math and display rendering of result rows.
package listing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPageSize = errors.New("page size must be > 0")
	ErrUnknownFilter   = errors.New("unknown filter")
)

// Filter is an optional WHERE condition. Clause holds exactly one "?"
// placeholder, e.g. "Warna = ?" or "strftime('%m', TanggalPembayaran) = ?".
type Filter struct {
	Name   string
	Clause string
}

// Spec describes one list: what to select, from where, and which filters the
// screen offers. Where is an always-on condition without parameters.
type Spec struct {
	Columns []string
	From    string
	Where   string
	OrderBy string
	Filters []Filter
}

// Filters maps a filter name to its value. A missing key, nil or "" means
// the filter is off.
type Filters map[string]any

// Statement is SQL text plus its bound arguments.
type Statement struct {
	SQL  string
	Args []any
}

// Request is the page a screen asks for.
type Request struct {
	Page    int
	PerPage int
}

// Offset returns the row offset of the requested page.
func (r Request) Offset() int { return (r.page() - 1) * r.PerPage }

func (r Request) page() int {
	if r.Page < 1 {
		return 1
	}
	return r.Page
}

// Build returns the COUNT statement and the page statement for spec under
// the given filters.
func Build(spec Spec, f Filters, req Request) (count Statement, data Statement, err error) {
	if req.PerPage <= 0 {
		return count, data, ErrInvalidPageSize
	}
	base, args, err := spec.base(f)
	if err != nil {
		return count, data, err
	}

	count = Statement{
		SQL:  "SELECT COUNT(*) FROM (" + base + ")",
		Args: args,
	}

	var b strings.Builder
	b.WriteString(base)
	if spec.OrderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(spec.OrderBy)
	}
	b.WriteString(" LIMIT ? OFFSET ?")
	dataArgs := make([]any, 0, len(args)+2)
	dataArgs = append(dataArgs, args...)
	dataArgs = append(dataArgs, req.PerPage, req.Offset())

	return count, Statement{SQL: b.String(), Args: dataArgs}, nil
}

func (s Spec) base(f Filters) (string, []any, error) {
	known := make(map[string]string, len(s.Filters))
	for _, flt := range s.Filters {
		known[flt.Name] = flt.Clause
	}
	for name := range f {
		if _, ok := known[name]; !ok {
			return "", nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
		}
	}

	var (
		conds []string
		args  []any
	)
	if s.Where != "" {
		conds = append(conds, "("+s.Where+")")
	}
	// declaration order keeps the SQL text stable for a given filter set
	for _, flt := range s.Filters {
		v, ok := f[flt.Name]
		if !ok || !active(v) {
			continue
		}
		conds = append(conds, "("+flt.Clause+")")
		args = append(args, v)
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(s.Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(s.From)
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	return b.String(), args, nil
}

func active(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(x) != ""
	case *string:
		return x != nil && strings.TrimSpace(*x) != ""
	case *int:
		return x != nil
	case *int64:
		return x != nil
	case *bool:
		return x != nil
	}
	return true
}
