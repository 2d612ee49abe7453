package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/juju/errors"

	"outofschool/internal/repository"
)

// Schema describes how an entity type maps onto a table.
//
// Columns lists every persisted column with the key column first. Fields must
// return pointers to the entity fields in exactly the same order; the same
// slice is used both as query arguments and as Scan destinations.
type Schema[T any] struct {
	Table   string
	Columns []string
	Fields  func(e *T) []any

	// GeneratedKey leaves the key to the database (BIGSERIAL) on insert.
	GeneratedKey bool
	// SoftDelete marks rows with is_deleted instead of removing them.
	SoftDelete bool
	// OrderBy is the default ORDER BY expression. Defaults to the key column.
	OrderBy string
}

func (s Schema[T]) key() string {
	return s.Columns[0]
}

func (s Schema[T]) orderBy() string {
	if s.OrderBy != "" {
		return s.OrderBy
	}
	return s.key()
}

func (s Schema[T]) selectList() string {
	return strings.Join(s.Columns, ", ")
}

func (s Schema[T]) hasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EntityPostgres is a PostgreSQL implementation of repository.EntityRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type EntityPostgres[K comparable, T any] struct {
	db     *sql.DB
	schema Schema[T]
}

// NewEntityPostgres creates a repository for the table described by schema.
func NewEntityPostgres[K comparable, T any](db *sql.DB, schema Schema[T]) *EntityPostgres[K, T] {
	return &EntityPostgres[K, T]{db: db, schema: schema}
}

// Create inserts a new row and returns the stored record.
func (r *EntityPostgres[K, T]) Create(ctx context.Context, e *T) (*T, error) {
	cols := r.schema.Columns
	args := r.schema.Fields(e)
	if r.schema.GeneratedKey {
		cols, args = cols[1:], args[1:]
	}

	q := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.schema.Table, strings.Join(cols, ", "), placeholders(1, len(cols)), r.schema.selectList(),
	)

	var out T
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(r.schema.Fields(&out)...); err != nil {
		return nil, translateError(err, r.schema.Table)
	}
	return &out, nil
}

// GetByID fetches a single row by its key.
func (r *EntityPostgres[K, T]) GetByID(ctx context.Context, id K) (*T, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1%s",
		r.schema.selectList(), r.schema.Table, r.schema.key(), r.aliveSuffix(" AND "))

	var out T
	if err := r.db.QueryRowContext(ctx, q, id).Scan(r.schema.Fields(&out)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("%s %v", r.schema.Table, id)
		}
		return nil, translateError(err, r.schema.Table)
	}
	return &out, nil
}

// GetAll returns every row.
func (r *EntityPostgres[K, T]) GetAll(ctx context.Context) ([]T, error) {
	return r.GetByFilter(ctx, nil)
}

// GetByFilter returns rows matching every condition of f.
func (r *EntityPostgres[K, T]) GetByFilter(ctx context.Context, f repository.Filter) ([]T, error) {
	where, args, err := r.where(f, 1)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s",
		r.schema.selectList(), r.schema.Table, where, r.schema.orderBy())
	return r.query(ctx, q, args...)
}

// List returns rows using LIMIT/OFFSET pagination and a total count.
func (r *EntityPostgres[K, T]) List(ctx context.Context, f repository.Filter, pq repository.PageQuery) (*repository.PageResult[T], error) {
	total, err := r.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	where, args, err := r.where(f, 1)
	if err != nil {
		return nil, err
	}
	n := len(args)
	q := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		r.schema.selectList(), r.schema.Table, where, r.schema.orderBy(), n+1, n+2)

	items, err := r.query(ctx, q, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[T]{Items: items, Total: total}, nil
}

// Update overwrites every non-key column and returns the stored record.
func (r *EntityPostgres[K, T]) Update(ctx context.Context, e *T) (*T, error) {
	fields := r.schema.Fields(e)
	cols := r.schema.Columns[1:]

	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d%s RETURNING %s",
		r.schema.Table, strings.Join(sets, ", "), r.schema.key(), len(cols)+1,
		r.aliveSuffix(" AND "), r.schema.selectList())

	args := append(fields[1:len(fields):len(fields)], fields[0])

	var out T
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(r.schema.Fields(&out)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("%s %v", r.schema.Table, derefKey(fields[0]))
		}
		return nil, translateError(err, r.schema.Table)
	}
	return &out, nil
}

// Delete removes (or soft-deletes) a row by key. Missing rows are not an error.
func (r *EntityPostgres[K, T]) Delete(ctx context.Context, id K) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.schema.Table, r.schema.key())
	if r.schema.SoftDelete {
		q = fmt.Sprintf("UPDATE %s SET is_deleted = TRUE WHERE %s = $1", r.schema.Table, r.schema.key())
	}
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return translateError(err, r.schema.Table)
	}
	return nil
}

// Count returns the number of rows matching f.
func (r *EntityPostgres[K, T]) Count(ctx context.Context, f repository.Filter) (int, error) {
	where, args, err := r.where(f, 1)
	if err != nil {
		return 0, err
	}
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.schema.Table, where)

	var total int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, translateError(err, r.schema.Table)
	}
	return total, nil
}

// Any reports whether a row matching f exists.
func (r *EntityPostgres[K, T]) Any(ctx context.Context, f repository.Filter) (bool, error) {
	where, args, err := r.where(f, 1)
	if err != nil {
		return false, err
	}
	q := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s%s)", r.schema.Table, where)

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&exists); err != nil {
		return false, translateError(err, r.schema.Table)
	}
	return exists, nil
}

func (r *EntityPostgres[K, T]) query(ctx context.Context, q string, args ...any) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, translateError(err, r.schema.Table)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var e T
		if err := rows.Scan(r.schema.Fields(&e)...); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *EntityPostgres[K, T]) aliveSuffix(join string) string {
	if !r.schema.SoftDelete {
		return ""
	}
	return join + "is_deleted = FALSE"
}

// where renders f as a WHERE clause with placeholders numbered from start.
func (r *EntityPostgres[K, T]) where(f repository.Filter, start int) (string, []any, error) {
	var (
		parts []string
		args  []any
	)
	for _, c := range f {
		if !r.schema.hasColumn(c.Column) {
			return "", nil, errors.NotValidf("filter column %q on %s", c.Column, r.schema.Table)
		}
		n := start + len(args)
		switch c.Op {
		case repository.OpEq:
			parts = append(parts, fmt.Sprintf("%s = $%d", c.Column, n))
			args = append(args, c.Value)
		case repository.OpIsNull:
			parts = append(parts, c.Column+" IS NULL")
		case repository.OpPrefix:
			parts = append(parts, fmt.Sprintf("%s LIKE $%d", c.Column, n))
			args = append(args, escapeLike(fmt.Sprint(c.Value))+"%")
		case repository.OpGte:
			parts = append(parts, fmt.Sprintf("%s >= $%d", c.Column, n))
			args = append(args, c.Value)
		case repository.OpLt:
			parts = append(parts, fmt.Sprintf("%s < $%d", c.Column, n))
			args = append(args, c.Value)
		case repository.OpNe:
			parts = append(parts, fmt.Sprintf("%s <> $%d", c.Column, n))
			args = append(args, c.Value)
		default:
			return "", nil, errors.NotValidf("filter operator %d", c.Op)
		}
	}
	if r.schema.SoftDelete {
		parts = append(parts, "is_deleted = FALSE")
	}
	if len(parts) == 0 {
		return "", args, nil
	}
	return " WHERE " + strings.Join(parts, " AND "), args, nil
}

func placeholders(start, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(ph, ", ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func derefKey(p any) any {
	switch v := p.(type) {
	case *int64:
		return *v
	case *string:
		return *v
	default:
		return v
	}
}
