package customer

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	getCustomerByIDQuery = `
        SELECT "customerId", "userName", email, contact, address, "createdAt", "updatedAt"
        FROM customers WHERE "customerId" = $1
    `
	getCustomerByIDOrEmailQuery = `
        SELECT "customerId", "userName", email, contact, address, "createdAt", "updatedAt"
        FROM customers WHERE "customerId" = $1 OR (email <> '' AND email = $2)
        LIMIT 1
    `
	insertCustomerQuery = `
        INSERT INTO customers ("customerId", "userName", email, contact, address, "createdAt", "updatedAt")
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	updateCustomerQuery = `
        UPDATE customers
        SET "userName" = $1, email = $2, contact = $3, address = $4, "updatedAt" = $5
        WHERE "customerId" = $6
        RETURNING "customerId", "userName", email, contact, address, "createdAt", "updatedAt"
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(customerID string) (Profile, error) {
	row := r.db.QueryRow(getCustomerByIDQuery, customerID)
	p, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

func (r *PostgresRepository) GetByIDOrEmail(customerID, email string) (Profile, error) {
	row := r.db.QueryRow(getCustomerByIDOrEmailQuery, customerID, email)
	p, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Profile) (Profile, error) {
	if _, err := r.db.Exec(insertCustomerQuery, p.CustomerID, p.Name, p.Email, p.Contact, p.Address, p.CreatedAt, p.UpdatedAt); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(customerID string, p Profile) (Profile, error) {
	row := r.db.QueryRow(updateCustomerQuery, p.Name, p.Email, p.Contact, p.Address, p.UpdatedAt, customerID)
	updated, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return updated, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (Profile, error) {
	var p Profile
	var createdAt, updatedAt sql.NullString
	if err := row.Scan(&p.CustomerID, &p.Name, &p.Email, &p.Contact, &p.Address, &createdAt, &updatedAt); err != nil {
		return Profile{}, err
	}
	p.CreatedAt = createdAt.String
	p.UpdatedAt = updatedAt.String
	return p, nil
}
