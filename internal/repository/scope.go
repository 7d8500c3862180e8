package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotVisible means no such row, or a row the caller's row-level security
// cannot see. The database does not reveal which, and neither do we.
var ErrNotVisible = errors.New("row not found or not visible")

// Scope is a database handle bound to one authenticated teacher for the
// duration of one request. Every operation runs inside a transaction that
// first pins the caller's id into the app.teacher_id setting, which the
// row-level-security policies key on. Scopes are built fresh per request by
// the auth middleware and never shared or pooled.
type Scope struct {
	db        *gorm.DB
	teacherID uuid.UUID
}

func NewScope(db *gorm.DB, teacherID uuid.UUID) *Scope {
	return &Scope{db: db, teacherID: teacherID}
}

func (s *Scope) TeacherID() uuid.UUID {
	return s.teacherID
}

func (s *Scope) run(fn func(tx *gorm.DB) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// set_config with is_local=true scopes the setting to this transaction.
		if err := tx.Exec("SELECT set_config('app.teacher_id', ?, true)", s.teacherID.String()).Error; err != nil {
			return err
		}
		return fn(tx)
	})
}
