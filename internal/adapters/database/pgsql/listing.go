package pgsql

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pmapp/personal_management_app/internal/dto"
)

// buildListFilter renders the shared WHERE clause for list endpoints: the
// soft-delete flag (default active-only), exact matches and case-insensitive
// substring matches. activeCol is the possibly alias-qualified is_active
// column. Filter columns are iterated in sorted order so the rendered SQL is
// deterministic.
func buildListFilter(p dto.ListParams, activeCol string) (string, []any) {
	conds := []string{fmt.Sprintf("%s = $1", activeCol)}
	args := []any{p.Active()}

	for _, col := range sortedKeys(p.Exact) {
		args = append(args, p.Exact[col])
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	for _, col := range sortedKeys(p.Substring) {
		args = append(args, p.Substring[col])
		conds = append(conds, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col, len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// buildOrderLimit renders the ORDER BY/LIMIT/OFFSET tail. The sort column is
// resolved through the per-resource whitelist; unknown sort keys fall back to
// the default column. numbered placeholders continue after argCount.
func buildOrderLimit(p dto.ListParams, sortable map[string]string, defaultSort string, argCount int) (string, []any) {
	col, ok := sortable[p.SortBy]
	if !ok {
		col = defaultSort
	}
	dir := "ASC"
	if strings.EqualFold(p.SortOrder, "desc") {
		dir = "DESC"
	}
	clause := fmt.Sprintf("ORDER BY %s %s LIMIT $%d OFFSET $%d", col, dir, argCount+1, argCount+2)
	return clause, []any{p.Limit, (p.Page - 1) * p.Limit}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// listRows runs the count + page queries for single-table resources and
// scans each row through scan. Joined listings (expenditures, purchases)
// assemble their own queries on top of buildListFilter instead.
func listRows[T any](
	ctx context.Context,
	pool *pgxpool.Pool,
	table string,
	selectCols string,
	p dto.ListParams,
	sortable map[string]string,
	defaultSort string,
	scan func(rows pgx.Rows) (T, error),
) ([]T, int64, error) {
	p.Normalize()
	where, args := buildListFilter(p, "is_active")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", table, where)
	if err := pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	orderLimit, pageArgs := buildOrderLimit(p, sortable, defaultSort, len(args))
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s %s", selectCols, table, where, orderLimit)

	rows, err := pool.Query(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating %s rows: %w", table, rows.Err())
	}

	return items, total, nil
}
