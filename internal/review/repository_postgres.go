package review

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByProductID(productID string) []Review {
	rows, err := r.db.Query(`SELECT id, "productId", "reviewerName", review, rating, "reviewDate"
		FROM reviews WHERE "productId" = $1 ORDER BY id DESC`, productID)
	if err != nil {
		return []Review{}
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var rev Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.Name, &rev.Review, &rev.Rating, &rev.Date); err != nil {
			continue
		}
		out = append(out, rev)
	}
	return out
}

func (r *PostgresRepository) Create(rev Review) (Review, error) {
	err := r.db.QueryRow(`INSERT INTO reviews ("productId", "reviewerName", review, rating, "reviewDate")
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		rev.ProductID, rev.Name, rev.Review, rev.Rating, rev.Date).Scan(&rev.ID)
	if err != nil {
		return Review{}, err
	}
	return rev, nil
}
