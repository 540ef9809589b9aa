package product

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// PostgresRepository is a Postgres-backed catalog repository.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `"productId", slug, "productName", description, price,
	"priceWithoutDiscount", "discountPercentage", rating, "stockLevel",
	tags, sizes, colors, "imagePath"`

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(`SELECT ` + productColumns + ` FROM products`)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE "productId" = $1`, id)
	return scanProduct(row)
}

func (r *PostgresRepository) GetBySlug(slug string) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	return scanProduct(row)
}

func (r *PostgresRepository) Search(query string) []Product {
	rows, err := r.db.Query(`SELECT `+productColumns+` FROM products WHERE "productName" ILIKE '%' || $1 || '%'`, query)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) ListByTag(tag string) []Product {
	rows, err := r.db.Query(`SELECT `+productColumns+` FROM products WHERE $1 = ANY(tags)`, tag)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()
	return collectProducts(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	var priceWithout, discount, rating sql.NullFloat64
	var stock sql.NullInt64
	err := row.Scan(&p.ID, &p.Slug, &p.Name, &p.Description, &p.Price,
		&priceWithout, &discount, &rating, &stock,
		pq.Array(&p.Tags), pq.Array(&p.Sizes), pq.Array(&p.Colors), &p.Image)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	if priceWithout.Valid {
		p.PriceWithoutDiscount = &priceWithout.Float64
	}
	if discount.Valid {
		p.DiscountPercentage = &discount.Float64
	}
	if rating.Valid {
		p.Rating = &rating.Float64
	}
	if stock.Valid {
		level := int(stock.Int64)
		p.StockLevel = &level
	}
	return p, nil
}

func collectProducts(rows *sql.Rows) []Product {
	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
