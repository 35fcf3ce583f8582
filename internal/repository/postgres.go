// Package repository содержит реализацию каталога товаров в PostgreSQL.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mmeshcher/vizcaya-system/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresCatalog предоставляет доступ к каталогу товаров в PostgreSQL.
// Таблица создаётся и наполняется миграциями при старте.
type PostgresCatalog struct {
	pool *pgxpool.Pool
}

// NewPostgresCatalog создаёт новый репозиторий каталога и инициализирует
// схему БД через миграции.
func NewPostgresCatalog(dsn string) (*PostgresCatalog, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresCatalog{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresCatalog) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func (r *PostgresCatalog) withRetry(ctx context.Context, fn func() error) error {
	var err error
	delays := []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

	for i := 0; i <= len(delays); i++ {
		err = fn()
		if err == nil {
			return nil
		}

		// Если ошибка контекста — выходим сразу
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected {
				if i < len(delays) {
					time.Sleep(delays[i])
					continue
				}
			}
		}

		// Если это не pg-ошибка, но сетевая
		if isConnectionError(err) {
			if i < len(delays) {
				time.Sleep(delays[i])
				continue
			}
		}

		break
	}
	return err
}

func isConnectionError(err error) bool {
	// Упрощенная проверка на ошибки соединения
	return strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "broken pipe") ||
		strings.Contains(err.Error(), "connection reset by peer")
}

// Close закрывает пул соединений с БД.
func (r *PostgresCatalog) Close() error {
	r.pool.Close()
	return nil
}

// Products возвращает полный каталог в порядке позиций, определённом миграцией.
func (r *PostgresCatalog) Products(ctx context.Context) ([]model.Product, error) {
	var res []model.Product

	err := r.withRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, name, image, weight, units_per_bulk, weight_per_bulk, category, price_cents
			 FROM products
			 ORDER BY position`,
		)
		if err != nil {
			return fmt.Errorf("select products: %w", err)
		}
		defer rows.Close()

		products := make([]model.Product, 0, 16)
		for rows.Next() {
			var (
				p        model.Product
				category string
			)
			if err := rows.Scan(
				&p.ID, &p.Name, &p.Image, &p.Weight,
				&p.UnitsPerBulk, &p.WeightPerBulk, &category, &p.PriceCents,
			); err != nil {
				return fmt.Errorf("scan product: %w", err)
			}
			p.Category = model.Category(category)
			products = append(products, p)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows error: %w", err)
		}

		res = products
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
