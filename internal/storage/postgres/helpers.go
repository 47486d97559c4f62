package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"ats-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// Querier is the subset of pgxpool.Pool and pgx.Tx used by the repositories.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// mapError classifies a driver error into the storage taxonomy while keeping
// the original error in the chain.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		// 22: data exception, 23: integrity constraint violation
		case strings.HasPrefix(pgErr.Code, "22"), strings.HasPrefix(pgErr.Code, "23"):
			return fmt.Errorf("%w: %s: %w", storage.ErrValidation, pgErr.Message, err)
		// 08: connection exception, 57P: operator intervention
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			return fmt.Errorf("%w: %w", storage.ErrTransport, err)
		}
		return err
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", storage.ErrTransport, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", storage.ErrTransport, err)
	}
	return err
}

// logFailure records a gateway failure unless it is a plain miss.
func logFailure(entity, op, id string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		logrus.WithFields(logrus.Fields{"entity": entity, "op": op, "id": id}).Debug("row not found")
		return
	}
	logrus.WithFields(logrus.Fields{"entity": entity, "op": op, "id": id}).WithError(err).Error("gateway call failed")
}

// listRows runs query and converts every row with conv. An empty result is
// an empty, non-nil slice.
func listRows[R any, T any](ctx context.Context, db Querier, query string, conv func(R) T, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[R])
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]T, 0, len(collected))
	for _, r := range collected {
		out = append(out, conv(r))
	}
	return out, nil
}

// oneRow runs a query expected to return a single row.
func oneRow[R any, T any](ctx context.Context, db Querier, query string, conv func(R) T, args ...any) (*T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	r, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[R])
	if err != nil {
		return nil, mapError(err)
	}
	out := conv(r)
	return &out, nil
}

// deleteByID removes one row and reports ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, db Querier, table, id string) error {
	cmdTag, err := db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return mapError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// setBuilder accumulates the SET clauses of a partial update.
type setBuilder struct {
	clauses []string
	args    []any
}

func (b *setBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *setBuilder) empty() bool { return len(b.clauses) == 0 }

// updateQuery renders UPDATE ... WHERE id = $n RETURNING columns; the id is
// appended as the final argument.
func (b *setBuilder) updateQuery(table, columns, id string, touch bool) (string, []any) {
	clauses := b.clauses
	if touch {
		clauses = append(clauses, "updated_at = NOW()")
	}
	args := append(b.args, id)
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, table, strings.Join(clauses, ", "), len(args), columns)
	return query, args
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
