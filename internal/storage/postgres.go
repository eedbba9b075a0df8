package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const DatabaseExists = `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`

// Database - пул соединений к БД сессий
type Database struct {
	Pool *pgxpool.Pool
	dsn  string
}

// Создание хранилища
func NewDatabase(dsn string) (*Database, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return &Database{Pool: pool, dsn: dsn}, nil
}

// Инициализация хранилища: при необходимости создаём БД и накатываем миграции
func (s *Database) Initialize(ctx context.Context) error {
	if err := s.ensureDatabase(ctx); err != nil {
		return fmt.Errorf("error create database: %w", err)
	}
	if err := s.migrate(); err != nil {
		return fmt.Errorf("error migrate database: %w", err)
	}
	return nil
}

func (s *Database) Close() error {
	s.Pool.Close()
	return nil
}

// ensureDatabase - создаёт БД из строки подключения, если её ещё нет.
// goose миграциями БД не создаёт, поэтому при недоступности целевой БД
// заходим через служебную postgres
func (s *Database) ensureDatabase(ctx context.Context) error {
	cfg, err := pgx.ParseConfig(s.dsn)
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err == nil {
		return conn.Close(ctx)
	}

	service := cfg.Copy()
	service.Database = `postgres`
	conn, err = pgx.ConnectConfig(ctx, service)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer conn.Close(ctx)

	var exist bool
	if err = conn.QueryRow(ctx, DatabaseExists, cfg.Database).Scan(&exist); err != nil {
		return fmt.Errorf("failed to check database exists: %w", err)
	}
	if !exist {
		if _, err = conn.Exec(ctx, fmt.Sprintf(`CREATE DATABASE %s`, cfg.Database)); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}
	return nil
}

// migrate - накатывает встроенные миграции через goose
func (s *Database) migrate() error {
	db, err := sql.Open("pgx", s.dsn)
	if err != nil {
		return fmt.Errorf("open db error: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect error: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose run migrations error: %w", err)
	}
	return nil
}
