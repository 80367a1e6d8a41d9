package repository

import "github.com/jmoiron/sqlx"

// Savepoint scopes a single row's writes inside the run transaction. Postgres
// aborts the whole transaction when a statement fails, so each insert attempt
// is bracketed by a savepoint: rolling back to it keeps earlier rows intact.
type Savepoint struct {
	ext sqlx.Execer
}

// NewSavepoint creates a Savepoint bound to the run transaction.
func NewSavepoint(ext sqlx.Execer) *Savepoint {
	return &Savepoint{ext: ext}
}

// Begin opens the savepoint before a row's writes.
func (s *Savepoint) Begin() error {
	_, err := s.ext.Exec(`SAVEPOINT row_import`)
	return err
}

// Rollback undoes the current row's writes only.
func (s *Savepoint) Rollback() error {
	_, err := s.ext.Exec(`ROLLBACK TO SAVEPOINT row_import`)
	return err
}

// Release discards the savepoint after a successful row.
func (s *Savepoint) Release() error {
	_, err := s.ext.Exec(`RELEASE SAVEPOINT row_import`)
	return err
}
