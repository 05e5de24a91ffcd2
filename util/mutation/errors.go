package mutation

import (
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrDuplicate  = errors.New("duplicate key")
	ErrReferenced = errors.New("row is referenced by other records")
	ErrNotFound   = errors.New("not found")
)

// Classify maps SQLite constraint failures onto ErrDuplicate and
// ErrReferenced, keeping the driver error in the chain. Other errors are
// returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %w", ErrReferenced, err)
	}
	// primary result code only: fall back on the message
	if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		msg := strings.ToUpper(se.Error())
		switch {
		case strings.Contains(msg, "UNIQUE"), strings.Contains(msg, "PRIMARY KEY"):
			return fmt.Errorf("%w: %w", ErrDuplicate, err)
		case strings.Contains(msg, "FOREIGN KEY"):
			return fmt.Errorf("%w: %w", ErrReferenced, err)
		}
	}
	return err
}
