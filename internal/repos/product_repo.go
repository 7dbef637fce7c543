package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"stockroom/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns every product, newest first. id breaks ties inside the same
// created_at second.
func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products
		ORDER BY created_at DESC, id DESC
	`)
	return out, err
}

// Get returns nil without error when no product matches.
func (r *ProductRepo) Get(id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products
		WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(name string, price domain.Money, quantity int) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO products (name, price, quantity)
		VALUES (?, ?, ?)
	`, name, price, quantity)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update reports whether a row matched the id. updated_at is refreshed in
// the statement itself so both engines behave the same.
func (r *ProductRepo) Update(id int64, name string, price domain.Money, quantity int) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE products
		SET name = ?, price = ?, quantity = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, name, price, quantity, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *ProductRepo) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
