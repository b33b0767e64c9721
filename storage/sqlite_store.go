package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"pricebook/catalog"
	"pricebook/customer"
)

// SQLiteStore implements the persistence contract against a local database,
// used when imports target a file instead of the remote catalog service.
type SQLiteStore struct {
	db *sql.DB
}

var ErrCustomerNotFound = errors.New("customer not found")

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS customers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	contract_number TEXT NOT NULL DEFAULT 'S/N',
	status TEXT NOT NULL DEFAULT 'Ativo',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS customer_products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	customer_id INTEGER NOT NULL REFERENCES customers(id),
	product_id INTEGER NOT NULL REFERENCES products(id),
	custom_price REAL NOT NULL CHECK(custom_price > 0),
	custom_brand TEXT,
	UNIQUE(customer_id, product_id)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM products ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]catalog.Product, 0, 256)
	for rows.Next() {
		var product catalog.Product
		if err := rows.Scan(&product.ID, &product.Name); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func (s *SQLiteStore) CreateProduct(ctx context.Context, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO products (name) VALUES (?);`, name)
	if err != nil {
		return 0, fmt.Errorf("insert product %q: %w", name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted product id: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) FindCustomer(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM customers WHERE name = ?;`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query customer %q: %w", name, err)
	}
	return id, true, nil
}

func (s *SQLiteStore) CreateCustomer(ctx context.Context, name, contract string) (int64, error) {
	if contract == "" {
		contract = customer.DefaultContract
	}
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO customers (name, contract_number) VALUES (?, ?);`,
		name,
		contract,
	)
	if err != nil {
		return 0, fmt.Errorf("insert customer %q: %w", name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted customer id: %w", err)
	}
	return id, nil
}

// ReplaceCustomerProducts swaps the customer's full association set inside
// one transaction.
func (s *SQLiteStore) ReplaceCustomerProducts(ctx context.Context, customerID int64, associations []catalog.Association) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM customer_products WHERE customer_id = ?;`, customerID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear associations for customer %d: %w", customerID, err)
	}

	const insertStmt = `
INSERT INTO customer_products (customer_id, product_id, custom_price, custom_brand)
VALUES (?, ?, ?, ?);`

	stmt, err := tx.PrepareContext(ctx, insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for _, association := range associations {
		var brand sql.NullString
		if association.CustomBrand != nil {
			brand = sql.NullString{String: *association.CustomBrand, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, customerID, association.ProductID, association.CustomPrice, brand); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert association for product %d: %w", association.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, contract_number FROM customers ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	customers := make([]customer.Customer, 0, 64)
	for rows.Next() {
		var record customer.Customer
		if err := rows.Scan(&record.ID, &record.Name, &record.Contract); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	return customers, nil
}

// ListCustomerProducts returns one customer's associations in product order.
func (s *SQLiteStore) ListCustomerProducts(ctx context.Context, customerID int64) ([]catalog.Association, error) {
	var exists int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM customers WHERE id = ?;`, customerID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("query customer %d: %w", customerID, err)
	}

	const query = `
SELECT customer_id, product_id, custom_price, custom_brand
FROM customer_products
WHERE customer_id = ?
ORDER BY product_id;`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("query associations for customer %d: %w", customerID, err)
	}
	defer rows.Close()

	associations := make([]catalog.Association, 0, 64)
	for rows.Next() {
		var (
			association catalog.Association
			brand       sql.NullString
		)
		if err := rows.Scan(&association.CustomerID, &association.ProductID, &association.CustomPrice, &brand); err != nil {
			return nil, fmt.Errorf("scan association: %w", err)
		}
		if brand.Valid {
			association.CustomBrand = &brand.String
		}
		associations = append(associations, association)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate associations: %w", err)
	}

	return associations, nil
}
