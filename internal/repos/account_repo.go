package repos

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"stockroom/internal/domain"
)

// ErrDuplicateEmail surfaces the UNIQUE(email) constraint. The pre-insert
// lookup in the auth service can lose a race with a concurrent
// registration; this error is the store-level backstop.
var ErrDuplicateEmail = errors.New("email already registered")

type AccountRepo struct{ db *sqlx.DB }

func NewAccountRepo(db *sqlx.DB) *AccountRepo { return &AccountRepo{db: db} }

// ByEmail returns nil without error when no account matches.
func (r *AccountRepo) ByEmail(email string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.Get(&a, `
		SELECT id, name, email, password_hash, created_at
		FROM accounts
		WHERE email = ?
	`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) Create(name, email, hash string) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO accounts (name, email, password_hash)
		VALUES (?, ?, ?)
	`, name, email, hash)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}
	return res.LastInsertId()
}

// isDuplicate recognizes a duplicate-key failure from either driver:
// MySQL error 1062, or SQLite's UNIQUE constraint message in tests.
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
