package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/itemcompare/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	image_url      TEXT NOT NULL,
	description    TEXT NOT NULL,
	price          DOUBLE PRECISION,
	rating         DOUBLE PRECISION,
	specifications TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const selectColumns = `SELECT id, name, image_url, description, price, rating, specifications FROM products`

// OpenPostgres opens a pgx-backed connection pool and verifies it with a ping.
func OpenPostgres(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// PostgresRepository stores products in a PostgreSQL table.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a repository over an open pool
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the products table if it does not exist.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return domain.NewRepositoryError("create schema", err)
	}
	return nil
}

// Create inserts a product, assigning an ID if it has none. A duplicate ID
// is reported as a repository error.
func (r *PostgresRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	const op = "save product"
	const query = `INSERT INTO products (id, name, image_url, description, price, rating, specifications) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	stored := withID(p)
	_, err := r.db.ExecContext(ctx, query,
		stored.ID, stored.Name, stored.ImageURL, stored.Description,
		stored.Price, stored.Rating, stored.Specifications,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.Product{}, domain.NewRepositoryError(op, fmt.Errorf("product %q already exists: %w", stored.ID, err))
	}
	if err != nil {
		return domain.Product{}, domain.NewRepositoryError(op, err)
	}
	return stored.Clone(), nil
}

// ListAll returns every product in insertion order
func (r *PostgresRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	const query = selectColumns + ` ORDER BY created_at, id`

	products, err := r.query(ctx, query)
	if err != nil {
		return nil, domain.NewRepositoryError("list products", err)
	}
	return products, nil
}

// FindByIDs returns the products whose ID is in ids, in insertion order
func (r *PostgresRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := selectColumns + ` WHERE id IN (` + strings.Join(placeholders, ", ") + `) ORDER BY created_at, id`

	products, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewRepositoryError("load products for comparison", err)
	}
	return products, nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	products := make([]domain.Product, 0, 16)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(rows *sql.Rows) (domain.Product, error) {
	var (
		p      domain.Product
		price  sql.NullFloat64
		rating sql.NullFloat64
	)
	if err := rows.Scan(&p.ID, &p.Name, &p.ImageURL, &p.Description, &price, &rating, &p.Specifications); err != nil {
		return domain.Product{}, err
	}
	if price.Valid {
		p.Price = domain.Float64(price.Float64)
	}
	if rating.Valid {
		p.Rating = domain.Float64(rating.Float64)
	}
	return p, nil
}
