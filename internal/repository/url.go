package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkguard/internal/config"
	"linkguard/internal/domain"
)

// uniqueViolation is the postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

const recordColumns = "id, link, is_fraud, created_at"

const insertIgnoringConflict = `INSERT INTO urls (link, is_fraud) VALUES ($1, $2)
	ON CONFLICT (link) DO NOTHING
	RETURNING ` + recordColumns

type URLRepository struct {
	pool *pgxpool.Pool
}

func NewURLRepository(ctx context.Context, cfg *config.DatabaseConfig) (*URLRepository, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &URLRepository{pool: pool}, nil
}

func dsn(cfg *config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Path:     cfg.DBName,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

func (r *URLRepository) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *URLRepository) Close() {
	r.pool.Close()
}

func (r *URLRepository) FindByLink(ctx context.Context, link string) (*domain.URLRecord, error) {
	rows, _ := r.pool.Query(ctx, `SELECT `+recordColumns+` FROM urls WHERE link = $1`, link)
	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.URLRecord])
	if err != nil {
		return nil, mapError(err)
	}
	return &rec, nil
}

// FindExistingLinks returns the subset of links already stored, in one query.
func (r *URLRepository) FindExistingLinks(ctx context.Context, links []string) ([]string, error) {
	if len(links) == 0 {
		return nil, nil
	}
	rows, _ := r.pool.Query(ctx, `SELECT link FROM urls WHERE link = ANY($1)`, links)
	existing, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to look up links: %w", err)
	}
	return existing, nil
}

// Insert stores one record. A link that is already stored yields
// domain.ErrDuplicateLink.
func (r *URLRepository) Insert(ctx context.Context, rec domain.NewURLRecord) (*domain.URLRecord, error) {
	rows, _ := r.pool.Query(ctx,
		`INSERT INTO urls (link, is_fraud) VALUES ($1, $2) RETURNING `+recordColumns,
		rec.Link, rec.IsFraud)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.URLRecord])
	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// InsertMany stores recs in one round trip. Links that collide with stored
// rows are skipped and counted as conflicts; only rows postgres reports back
// as created are returned.
//
// The batch runs in one implicit transaction, so a single bad row rolls back
// the rest. When that happens the rows are retried one statement at a time
// and the ones that still fail are reported in Failed. The call only errors
// when nothing in the batch could be written.
func (r *URLRepository) InsertMany(ctx context.Context, recs []domain.NewURLRecord) (domain.InsertResult, error) {
	if len(recs) == 0 {
		return domain.InsertResult{}, nil
	}

	result, err := r.insertBatch(ctx, recs)
	if err == nil {
		return result, nil
	}
	if ctx.Err() != nil {
		return domain.InsertResult{}, fmt.Errorf("failed to insert batch: %w", err)
	}

	result, rowErr := r.insertEach(ctx, recs)
	if len(result.Inserted) == 0 && result.Conflicts == 0 {
		if rowErr == nil {
			rowErr = err
		}
		return domain.InsertResult{}, fmt.Errorf("failed to insert batch: %w", rowErr)
	}
	return result, nil
}

func (r *URLRepository) insertBatch(ctx context.Context, recs []domain.NewURLRecord) (domain.InsertResult, error) {
	batch := &pgx.Batch{}
	for _, rec := range recs {
		batch.Queue(insertIgnoringConflict, rec.Link, rec.IsFraud)
	}

	br := r.pool.SendBatch(ctx, batch)
	result := domain.InsertResult{Inserted: make([]domain.URLRecord, 0, len(recs))}
	for range recs {
		rows, err := br.Query()
		if err != nil {
			_ = br.Close()
			return domain.InsertResult{}, err
		}
		created, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.URLRecord])
		if err != nil {
			_ = br.Close()
			return domain.InsertResult{}, err
		}
		if len(created) == 0 {
			result.Conflicts++
			continue
		}
		result.Inserted = append(result.Inserted, created...)
	}
	if err := br.Close(); err != nil {
		return domain.InsertResult{}, err
	}

	return result, nil
}

// insertEach writes recs one autocommit statement at a time. It stops early
// only when ctx is done; the returned error is the last row failure.
func (r *URLRepository) insertEach(ctx context.Context, recs []domain.NewURLRecord) (domain.InsertResult, error) {
	result := domain.InsertResult{Inserted: make([]domain.URLRecord, 0, len(recs))}
	var lastErr error
	for _, rec := range recs {
		rows, _ := r.pool.Query(ctx, insertIgnoringConflict, rec.Link, rec.IsFraud)
		created, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.URLRecord])
		if err != nil {
			if ctx.Err() != nil {
				return domain.InsertResult{}, err
			}
			lastErr = err
			result.Failed = append(result.Failed, rec.Link)
			continue
		}
		if len(created) == 0 {
			result.Conflicts++
			continue
		}
		result.Inserted = append(result.Inserted, created...)
	}
	return result, lastErr
}

func (r *URLRepository) DeleteByID(ctx context.Context, id int64) (*domain.URLRecord, error) {
	rows, _ := r.pool.Query(ctx, `DELETE FROM urls WHERE id = $1 RETURNING `+recordColumns, id)
	deleted, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.URLRecord])
	if err != nil {
		return nil, mapError(err)
	}
	return &deleted, nil
}

// ListRecent returns up to limit records, newest first.
func (r *URLRepository) ListRecent(ctx context.Context, limit int) ([]domain.URLRecord, error) {
	rows, _ := r.pool.Query(ctx,
		`SELECT `+recordColumns+` FROM urls ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.URLRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to list urls: %w", err)
	}
	return recs, nil
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %w", domain.ErrDuplicateLink, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
