package database

import (
	"context"
	"fmt"
	"time"

	"bobapos/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Conn struct{ *pgxpool.Pool }

// Connect builds a pgx pool and waits for the database to become reachable,
// retrying because the container usually starts alongside Postgres.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Conn, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	poolCfg.MaxConns = 25
	poolCfg.MinConns = 5
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	const (
		maxRetries = 10
		retryDelay = 2 * time.Second
		pingTTL    = 5 * time.Second
	)

	for i := 1; i <= maxRetries; i++ {
		pool, perr := pgxpool.NewWithConfig(ctx, poolCfg)
		if perr == nil {
			pctx, cancel := context.WithTimeout(ctx, pingTTL)
			perr = pool.Ping(pctx)
			cancel()
			if perr == nil {
				return &Conn{Pool: pool}, nil
			}
			pool.Close()
		}
		err = perr

		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			return nil, fmt.Errorf("db connect canceled: %w", ctx.Err())
		}
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxRetries, err)
}

func (c *Conn) Close() {
	if c != nil && c.Pool != nil {
		c.Pool.Close()
	}
}

// Migrate bootstraps the POS schema. Statements are idempotent so every
// service instance can run them on startup.
func (c *Conn) Migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			employeeid INTEGER PRIMARY KEY,
			employeename VARCHAR(255) NOT NULL,
			employeerole VARCHAR(100) NOT NULL,
			hoursworked NUMERIC(6,2) NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS menuitems (
			menuitemid SERIAL PRIMARY KEY,
			drinkcategory VARCHAR(100) NOT NULL,
			menuitemname VARCHAR(255) NOT NULL,
			price NUMERIC(8,2) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS inventory (
			ingredientid SERIAL PRIMARY KEY,
			ingredientname VARCHAR(255) NOT NULL,
			ingredientcount INTEGER NOT NULL DEFAULT 0,
			CONSTRAINT inventory_nonnegative CHECK (ingredientcount >= 0)
		)`,

		`CREATE TABLE IF NOT EXISTS menuitemingredients (
			menuitemid INTEGER NOT NULL REFERENCES menuitems(menuitemid) ON DELETE CASCADE,
			ingredientid INTEGER NOT NULL REFERENCES inventory(ingredientid) ON DELETE CASCADE,
			ingredientqty INTEGER NOT NULL,
			PRIMARY KEY (menuitemid, ingredientid)
		)`,

		`CREATE TABLE IF NOT EXISTS orders (
			orderid SERIAL PRIMARY KEY,
			timeoforder TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			customerid INTEGER,
			employeeid INTEGER NOT NULL REFERENCES employees(employeeid),
			totalcost NUMERIC(10,2) NOT NULL,
			orderweek INTEGER NOT NULL,
			is_complete BOOLEAN NOT NULL DEFAULT false
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_timeoforder ON orders(timeoforder)`,

		`CREATE TABLE IF NOT EXISTS orderitems (
			orderitemid SERIAL PRIMARY KEY,
			orderid INTEGER NOT NULL REFERENCES orders(orderid) ON DELETE CASCADE,
			menuitemid INTEGER NOT NULL REFERENCES menuitems(menuitemid),
			quantity INTEGER NOT NULL,
			size VARCHAR(20) NOT NULL DEFAULT 'Medium',
			is_complete BOOLEAN NOT NULL DEFAULT false
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orderitems_orderid ON orderitems(orderid)`,
	}

	for _, migration := range migrations {
		if _, err := c.Exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
