package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// All executes the query and returns all matching records with automatic retry
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	start := time.Now()
	var data []T

	// Apply timeout if specified
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		data = nil // Reset on retry
		query := q.buildSelect(&data)
		return query.Scan(ctx)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// First executes the query and returns the first matching record with automatic retry.
// A missing record yields (nil, nil), never an error.
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	start := time.Now()
	var data T

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		query := q.buildSelect(&data).Limit(1)
		return query.Scan(ctx)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute first query: %w (took %v)", err, time.Since(start))
	}

	return &data, nil
}

// Count executes the query and returns the count of matching records with automatic retry
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	start := time.Now()
	var count int

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		var model T
		query := q.applyWhereToSelect(q.db.NewSelect().Model(&model))
		if q.tableName != "" {
			query = query.ModelTableExpr(q.tableName)
		}
		var err error
		count, err = query.Count(ctx)
		return err
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w (took %v)", err, time.Since(start))
	}

	return count, nil
}

// Exists checks if any records match the query
func (q *QueryBuilder[T]) Exists(ctx context.Context) (bool, error) {
	count, err := q.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert inserts a new record and returns it as persisted with automatic retry
func (q *QueryBuilder[T]) Insert(ctx context.Context, data *T) (*T, error) {
	start := time.Now()

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		query := q.db.NewInsert().Model(data).Returning("*")

		if q.tableName != "" {
			query = query.ModelTableExpr(q.tableName)
		}

		_, err := query.Exec(ctx)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute insert query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// InsertMany inserts multiple records with automatic retry
func (q *QueryBuilder[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	start := time.Now()

	if len(data) == 0 {
		return data, nil
	}

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		query := q.db.NewInsert().Model(&data)

		if q.tableName != "" {
			query = query.ModelTableExpr(q.tableName)
		}

		_, err := query.Exec(ctx)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute bulk insert query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// Update updates records matching the query with automatic retry
func (q *QueryBuilder[T]) Update(ctx context.Context, data map[string]any) (int, error) {
	start := time.Now()
	var rowsAffected int64

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		var model T
		query := q.db.NewUpdate().Model(&model)

		if q.tableName != "" {
			query = query.ModelTableExpr(q.tableName)
		}

		query = q.applyWhereToUpdate(query)

		for key, value := range data {
			query = query.Set("? = ?", bun.Ident(key), value)
		}

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}

// UpdateReturning updates records and returns the canonical rows with automatic retry
func (q *QueryBuilder[T]) UpdateReturning(ctx context.Context, data map[string]any) ([]T, error) {
	start := time.Now()
	var results []T

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		results = nil // Reset on retry
		var model T
		query := q.db.NewUpdate().Model(&model)

		if q.tableName != "" {
			query = query.ModelTableExpr(q.tableName)
		}

		query = q.applyWhereToUpdate(query)

		for key, value := range data {
			query = query.Set("? = ?", bun.Ident(key), value)
		}

		query = query.Returning("*")

		_, err := query.Exec(ctx, &results)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return results, nil
}

// UpdateModel persists every column of the given model for rows matching the query
func (q *QueryBuilder[T]) UpdateModel(ctx context.Context, data *T) ([]T, error) {
	start := time.Now()
	var results []T

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		results = nil
		query := q.db.NewUpdate().Model(data)

		if q.tableName != "" {
			query = query.ModelTableExpr(q.tableName)
		}

		query = q.applyWhereToUpdate(query).Returning("*")

		_, err := query.Exec(ctx, &results)
		return err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return results, nil
}

// Delete deletes records matching the query with automatic retry
func (q *QueryBuilder[T]) Delete(ctx context.Context) (int, error) {
	start := time.Now()
	var rowsAffected int64

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	err := WithRetry(ctx, func() error {
		var model T
		query := q.db.NewDelete().Model(&model)

		if q.tableName != "" {
			query = query.ModelTableExpr(q.tableName)
		}

		query = q.applyWhereToDelete(query)

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to execute delete query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}

// buildSelect assembles the bun SELECT query from the accumulated clauses
func (q *QueryBuilder[T]) buildSelect(model any) *bun.SelectQuery {
	query := q.db.NewSelect().Model(model)

	if q.tableName != "" {
		query = query.ModelTableExpr(q.tableName)
	}

	for _, col := range q.selectCols {
		query = query.Column(col)
	}

	for _, rel := range q.relations {
		query = query.Relation(rel)
	}

	query = q.applyWhereToSelect(query)

	for _, order := range q.orders {
		query = query.OrderExpr("? ?", bun.Ident(order.Column), bun.Safe(order.Direction))
	}

	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}

func (q *QueryBuilder[T]) applyWhereToSelect(query *bun.SelectQuery) *bun.SelectQuery {
	for _, where := range q.wheres {
		sql, args := where.toSQL()
		query = query.Where(sql, args...)
	}
	for _, group := range q.whereGroups {
		sql, args := group.toSQL()
		if sql != "" {
			query = query.Where(sql, args...)
		}
	}
	return query
}

func (q *QueryBuilder[T]) applyWhereToUpdate(query *bun.UpdateQuery) *bun.UpdateQuery {
	for _, where := range q.wheres {
		sql, args := where.toSQL()
		query = query.Where(sql, args...)
	}
	for _, group := range q.whereGroups {
		sql, args := group.toSQL()
		if sql != "" {
			query = query.Where(sql, args...)
		}
	}
	return query
}

func (q *QueryBuilder[T]) applyWhereToDelete(query *bun.DeleteQuery) *bun.DeleteQuery {
	for _, where := range q.wheres {
		sql, args := where.toSQL()
		query = query.Where(sql, args...)
	}
	for _, group := range q.whereGroups {
		sql, args := group.toSQL()
		if sql != "" {
			query = query.Where(sql, args...)
		}
	}
	return query
}

// toSQL renders a single WHERE clause into a bun condition and its args
func (w *WhereClause) toSQL() (string, []any) {
	if w.IsRaw {
		return w.RawSQL, w.RawArgs
	}

	switch w.Operator {
	case "IS NULL", "IS NOT NULL":
		return fmt.Sprintf("%s %s", w.Column, w.Operator), nil
	case "IN":
		values, _ := w.Value.([]any)
		cond := fmt.Sprintf("%s IN (?)", w.Column)
		if w.Negate {
			cond = "NOT " + cond
		}
		return cond, []any{bun.In(values)}
	default:
		cond := fmt.Sprintf("%s %s ?", w.Column, w.Operator)
		if w.Negate {
			cond = fmt.Sprintf("NOT (%s)", cond)
		}
		return cond, []any{w.Value}
	}
}

// toSQL renders a WHERE group joined by its connector
func (g *WhereGroup) toSQL() (string, []any) {
	if len(g.Conditions) == 0 {
		return "", nil
	}

	conditions := make([]string, 0, len(g.Conditions))
	var args []any

	for _, cond := range g.Conditions {
		sql, condArgs := cond.toSQL()
		conditions = append(conditions, sql)
		args = append(args, condArgs...)
	}

	return "(" + strings.Join(conditions, " "+g.Connector+" ") + ")", args
}
