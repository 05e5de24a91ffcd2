package mutation

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Policy decides what a batch delete does when one key fails.
type Policy int

const (
	// Atomic deletes all keys in one transaction or none of them.
	Atomic Policy = iota
	// BestEffort deletes each key on its own and reports the failures.
	BestEffort
)

func (p Policy) String() string {
	if p == BestEffort {
		return "best_effort"
	}
	return "atomic"
}

// ParsePolicy reads the DELETE_POLICY setting.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "atomic", "all_or_nothing":
		return Atomic, nil
	case "best_effort", "best-effort":
		return BestEffort, nil
	}
	return Atomic, fmt.Errorf("unknown delete policy %q", s)
}

const NothingSelected = "nothing selected"

// KeyError is the failure of one key in a best-effort delete.
type KeyError struct {
	Key string `json:"key"`
	Err error  `json:"-"`
	Msg string `json:"error"`
}

// DeleteResult reports a batch delete. Missing holds keys that matched no row.
type DeleteResult struct {
	Requested int        `json:"requested"`
	Deleted   int        `json:"deleted"`
	Missing   []string   `json:"missing,omitempty"`
	Failed    []KeyError `json:"failed,omitempty"`
	Notice    string     `json:"notice,omitempty"`
}

// Executor is satisfied by *sql.DB.
type Executor interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// DeleteKeys runs stmt (a single-key DELETE with one placeholder) for every
// key. An empty selection is a no-op that returns the NothingSelected notice
// without touching the store. Under Atomic the first failure rolls back the
// whole batch and is returned classified; under BestEffort failures are
// collected per key.
func DeleteKeys[K any](ctx context.Context, db Executor, stmt string, keys []K, p Policy) (res DeleteResult, err error) {
	res.Requested = len(keys)
	if len(keys) == 0 {
		res.Notice = NothingSelected
		return res, nil
	}

	if p == BestEffort {
		for _, k := range keys {
			n, err := execOne(ctx, db, stmt, k)
			switch {
			case err != nil:
				err = Classify(err)
				res.Failed = append(res.Failed, KeyError{Key: fmt.Sprint(k), Err: err, Msg: err.Error()})
			case n == 0:
				res.Missing = append(res.Missing, fmt.Sprint(k))
			default:
				res.Deleted++
			}
		}
		return res, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return DeleteResult{Requested: len(keys)}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, k := range keys {
		var n int64
		n, err = execOne(ctx, tx, stmt, k)
		if err != nil {
			err = fmt.Errorf("delete %v: %w", k, Classify(err))
			return DeleteResult{Requested: len(keys)}, err
		}
		if n == 0 {
			res.Missing = append(res.Missing, fmt.Sprint(k))
			continue
		}
		res.Deleted++
	}
	if err = tx.Commit(); err != nil {
		return DeleteResult{Requested: len(keys)}, err
	}
	return res, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func execOne(ctx context.Context, ex execer, stmt string, key any) (int64, error) {
	r, err := ex.ExecContext(ctx, stmt, key)
	if err != nil {
		return 0, err
	}
	return r.RowsAffected()
}
