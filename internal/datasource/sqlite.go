package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/orderdash/internal/models"
)

// schema sets up the collection tables. Orders reference users and
// users reference companies, so creation order matters.
const schema = `
CREATE TABLE IF NOT EXISTS companies (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    industry TEXT NOT NULL DEFAULT '',
    market_cap TEXT NOT NULL DEFAULT '',
    sector TEXT NOT NULL DEFAULT '',
    url TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    gender TEXT NOT NULL DEFAULT '',
    birthday TEXT NOT NULL DEFAULT '',
    avatar TEXT NOT NULL DEFAULT '',
    company_id INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS orders (
    id INTEGER PRIMARY KEY,
    transaction_id TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT '',
    user_id INTEGER NOT NULL,
    total TEXT NOT NULL DEFAULT '',
    card_type TEXT NOT NULL DEFAULT '',
    card_number TEXT NOT NULL DEFAULT '',
    order_country TEXT NOT NULL DEFAULT '',
    order_ip TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
CREATE INDEX IF NOT EXISTS idx_users_company_id ON users(company_id);
`

// SQLiteSource loads the collections from a SQLite database file.
type SQLiteSource struct {
	db *sql.DB
}

var _ Source = (*SQLiteSource)(nil)

// NewSQLiteSource opens (creating if necessary) the database at dbPath
// and ensures the schema exists.
func NewSQLiteSource(dbPath string) (*SQLiteSource, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Load reads all three collections.
func (s *SQLiteSource) Load(ctx context.Context) (Collections, error) {
	var c Collections
	var err error

	if c.Companies, err = s.loadCompanies(ctx); err != nil {
		return Collections{}, err
	}
	if c.Users, err = s.loadUsers(ctx); err != nil {
		return Collections{}, err
	}
	if c.Orders, err = s.loadOrders(ctx); err != nil {
		return Collections{}, err
	}
	return c, nil
}

func (s *SQLiteSource) loadCompanies(ctx context.Context) ([]models.RawCompany, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, industry, market_cap, sector, url FROM companies ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	var companies []models.RawCompany
	for rows.Next() {
		var c models.RawCompany
		if err := rows.Scan(&c.ID, &c.Title, &c.Industry, &c.MarketCap, &c.Sector, &c.URL); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (s *SQLiteSource) loadUsers(ctx context.Context) ([]models.RawUser, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, first_name, last_name, gender, birthday, avatar, company_id FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []models.RawUser
	for rows.Next() {
		var u models.RawUser
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Gender, &u.Birthday, &u.Avatar, &u.CompanyID); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *SQLiteSource) loadOrders(ctx context.Context) ([]models.RawOrder, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, transaction_id, created_at, user_id, total, card_type, card_number, order_country, order_ip FROM orders ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.RawOrder
	for rows.Next() {
		var o models.RawOrder
		if err := rows.Scan(&o.ID, &o.TransactionID, &o.CreatedAt, &o.UserID, &o.Total,
			&o.CardType, &o.CardNumber, &o.OrderCountry, &o.OrderIP); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Seed inserts the given collections in one transaction, generating
// transaction ids for orders that lack one. Used by dev tooling and
// tests to build a loadable database.
func (s *SQLiteSource) Seed(ctx context.Context, c Collections) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, company := range c.Companies {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO companies (id, title, industry, market_cap, sector, url) VALUES (?, ?, ?, ?, ?, ?)",
			company.ID, company.Title, company.Industry, company.MarketCap, company.Sector, company.URL)
		if err != nil {
			return fmt.Errorf("insert company %d: %w", company.ID, err)
		}
	}
	for _, user := range c.Users {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO users (id, first_name, last_name, gender, birthday, avatar, company_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
			user.ID, user.FirstName, user.LastName, user.Gender, user.Birthday, user.Avatar, user.CompanyID)
		if err != nil {
			return fmt.Errorf("insert user %d: %w", user.ID, err)
		}
	}
	for _, order := range c.Orders {
		if order.TransactionID == "" {
			order.TransactionID = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO orders (id, transaction_id, created_at, user_id, total, card_type, card_number, order_country, order_ip) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			order.ID, order.TransactionID, order.CreatedAt, order.UserID, order.Total,
			order.CardType, order.CardNumber, order.OrderCountry, order.OrderIP)
		if err != nil {
			return fmt.Errorf("insert order %d: %w", order.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
