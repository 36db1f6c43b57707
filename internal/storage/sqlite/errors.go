package sqlite

import (
	"database/sql"
	"errors"

	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/Aimecol/cwsms/internal/storage"
)

// SQLite reports the same SQLITE_CONSTRAINT_FOREIGNKEY code for a child
// pointing at a missing parent and for a parent deleted under existing
// children, so the translation is direction sensitive: writeErr is used
// after INSERT/UPDATE, deleteErr after DELETE.

// writeErr translates a failed insert or update into a domain error.
func writeErr(err error) error {
	switch constraintCode(err) {
	case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return storage.ErrReferentialViolation
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return storage.ErrDuplicateKey
	case sqlite3lib.SQLITE_CONSTRAINT_CHECK, sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
		return storage.ErrValidation
	}
	return err
}

// deleteErr translates a failed delete into a domain error.
func deleteErr(err error) error {
	if constraintCode(err) == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
		return storage.ErrReferentialInUse
	}
	return err
}

// notFoundErr maps sql.ErrNoRows onto the domain kind.
func notFoundErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}

// constraintCode extracts the extended SQLite result code from a driver
// error, or 0 when err is not a constraint failure.
func constraintCode(err error) int {
	var serr *sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code()
	}
	return 0
}
