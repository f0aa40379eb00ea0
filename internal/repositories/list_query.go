package repositories

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

type FilterKind int

const (
	FilterUUID FilterKind = iota
	FilterBool
	FilterInt
	FilterString
)

// Filter describes one exact-match query parameter.
type Filter struct {
	Column string
	Kind   FilterKind
	// Allowed restricts FilterString values when non-empty.
	Allowed []string
}

// ListSpec is the allow-list an entity exposes to list endpoints.
// Only columns named here ever reach generated SQL.
type ListSpec struct {
	From         string
	Filters      map[string]Filter
	Search       []string
	Ordering     map[string]string
	DefaultOrder string
}

// ListParams are validated list options.
type ListParams struct {
	Filters  map[string]any
	Search   string
	Ordering string
	Limit    int
	Offset   int
}

// ListParamError is returned for filter or ordering values outside the allow-list.
type ListParamError struct {
	Field   string
	Message string
}

func (e *ListParamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseFilters reads the ListSpec's filter parameters out of a query string
// and converts each to its column type.
func (s ListSpec) ParseFilters(q url.Values) (map[string]any, error) {
	out := make(map[string]any)
	for name, f := range s.Filters {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			continue
		}
		v, err := parseFilterValue(f, raw)
		if err != nil {
			return nil, &ListParamError{Field: name, Message: err.Error()}
		}
		out[name] = v
	}
	return out, nil
}

func parseFilterValue(f Filter, raw string) (any, error) {
	switch f.Kind {
	case FilterUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid UUID", raw)
		}
		return id, nil
	case FilterBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid boolean", raw)
		}
		return b, nil
	case FilterInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid integer", raw)
		}
		return n, nil
	default:
		if len(f.Allowed) > 0 && !slices.Contains(f.Allowed, raw) {
			return nil, fmt.Errorf("must be one of: %s", strings.Join(f.Allowed, ", "))
		}
		return raw, nil
	}
}

// orderClause resolves "field,-other" into SQL using the ListSpec's allow-list.
func (s ListSpec) orderClause(ordering string) (string, error) {
	ordering = strings.TrimSpace(ordering)
	if ordering == "" {
		return s.DefaultOrder, nil
	}
	var parts []string
	for _, field := range strings.Split(ordering, ",") {
		field = strings.TrimSpace(field)
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			dir = "DESC"
			field = field[1:]
		}
		col, ok := s.Ordering[field]
		if !ok {
			return "", &ListParamError{Field: "ordering", Message: fmt.Sprintf("cannot order by %q", field)}
		}
		parts = append(parts, col+" "+dir)
	}
	return strings.Join(parts, ", "), nil
}

// ValidateOrdering checks an ordering string without building SQL.
func (s ListSpec) ValidateOrdering(ordering string) error {
	_, err := s.orderClause(ordering)
	return err
}

// buildListQuery returns the page query, the count query, and their args.
// The count query uses every arg except the trailing LIMIT/OFFSET pair.
func buildListQuery(spec ListSpec, selectCols string, p ListParams) (string, string, []any, error) {
	var (
		conditions []string
		args       []any
		idx        = 1
	)

	keys := make([]string, 0, len(p.Filters))
	for k := range p.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f, ok := spec.Filters[k]
		if !ok {
			return "", "", nil, &ListParamError{Field: k, Message: "unknown filter"}
		}
		conditions = append(conditions, fmt.Sprintf("%s = $%d", f.Column, idx))
		args = append(args, p.Filters[k])
		idx++
	}

	if search := strings.TrimSpace(p.Search); search != "" && len(spec.Search) > 0 {
		var ors []string
		for _, col := range spec.Search {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, idx))
		}
		conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
		args = append(args, "%"+search+"%")
		idx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	order, err := spec.orderClause(p.Ordering)
	if err != nil {
		return "", "", nil, err
	}

	countQuery := "SELECT count(*) FROM " + spec.From + where
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		selectCols, spec.From, where, order, idx, idx+1)
	args = append(args, p.Limit, p.Offset)
	return query, countQuery, args, nil
}

// runList executes a paged list and returns the rows plus the unpaged total.
func runList[T any](
	ctx context.Context,
	db DB,
	spec ListSpec,
	selectCols string,
	p ListParams,
	scan func(pgx.Row) (T, error),
) ([]T, int, error) {
	query, countQuery, args, err := buildListQuery(spec, selectCols, p)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := db.QueryRow(ctx, countQuery, args[:len(args)-2]...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, item)
	}
	return out, total, rows.Err()
}

// collect drains rows through scan.
func collect[T any](rows pgx.Rows, err error, scan func(pgx.Row) (T, error)) ([]T, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
