package repository

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"contentnav/internal/domain"
	models "contentnav/internal/domain/models/content"
	"contentnav/internal/domain/repositories"
	contentRepo "contentnav/internal/domain/repositories/content"
)

// Columns are the physical columns of every collection table.
// Any other field name addresses a key of the meta JSON column.
var Columns = []string{"id", "path", "stem", "extension", "title", "description", "navigation", "body", "meta", "updated_at"}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func isColumn(name string) bool {
	return slices.Contains(Columns, name)
}

type condition struct {
	field string
	op    contentRepo.Operator
	value any
}

type ordering struct {
	field     string
	direction contentRepo.Direction
}

// collectionQuery implements contentRepo.QueryBuilder over one collection table.
// Builder methods copy the receiver, so a partially built query can be reused.
type collectionQuery struct {
	db         repositories.DatabaseAdapter
	collection *models.Collection
	fields     []string
	conditions []condition
	orders     []ordering
	limit      int
	offset     int
}

func newCollectionQuery(db repositories.DatabaseAdapter, collection *models.Collection) *collectionQuery {
	return &collectionQuery{db: db, collection: collection}
}

func (q *collectionQuery) clone() *collectionQuery {
	c := *q
	c.fields = slices.Clone(q.fields)
	c.conditions = slices.Clone(q.conditions)
	c.orders = slices.Clone(q.orders)
	return &c
}

// Order appends a sort key
func (q *collectionQuery) Order(field string, direction contentRepo.Direction) contentRepo.QueryBuilder {
	c := q.clone()
	c.orders = append(c.orders, ordering{field: field, direction: direction})
	return c
}

// Where appends a condition
func (q *collectionQuery) Where(field string, op contentRepo.Operator, value any) contentRepo.QueryBuilder {
	c := q.clone()
	c.conditions = append(c.conditions, condition{field: field, op: op, value: value})
	return c
}

// Select restricts the returned fields
func (q *collectionQuery) Select(fields ...string) contentRepo.QueryBuilder {
	c := q.clone()
	c.fields = append(c.fields, fields...)
	return c
}

// Limit caps the number of rows
func (q *collectionQuery) Limit(n int) contentRepo.QueryBuilder {
	c := q.clone()
	c.limit = n
	return c
}

// Skip offsets the result
func (q *collectionQuery) Skip(n int) contentRepo.QueryBuilder {
	c := q.clone()
	c.offset = n
	return c
}

// All runs the query and converts every row to a record
func (q *collectionQuery) All(ctx context.Context) ([]models.Record, error) {
	sql, args, err := q.buildSelect()
	if err != nil {
		return nil, err
	}
	rows, err := q.db.All(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query collection %s: %w", q.collection.Name, err)
	}

	records := make([]models.Record, len(rows))
	for i, row := range rows {
		records[i] = rowToRecord(row, q.fields)
	}
	return records, nil
}

// First returns the first matching record
func (q *collectionQuery) First(ctx context.Context) (*models.Record, error) {
	records, err := q.Limit(1).All(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("no matching record in collection %q", q.collection.Name)}
	}
	return &records[0], nil
}

// Count returns the number of matching records, ignoring limit and skip
func (q *collectionQuery) Count(ctx context.Context) (int, error) {
	where, args, err := q.buildWhere()
	if err != nil {
		return 0, err
	}
	sql := fmt.Sprintf("SELECT COUNT(*) AS count FROM %s%s", q.collection.Table, where)

	row, err := q.db.First(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("count collection %s: %w", q.collection.Name, err)
	}
	return toInt(row["count"])
}

// buildSelect renders the SELECT statement and its bind arguments
func (q *collectionQuery) buildSelect() (string, []any, error) {
	columns, err := q.selectColumns()
	if err != nil {
		return "", nil, err
	}
	where, args, err := q.buildWhere()
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s%s", strings.Join(columns, ", "), q.collection.Table, where)

	if len(q.orders) > 0 {
		keys := make([]string, len(q.orders))
		for i, o := range q.orders {
			if err := checkColumn(o.field); err != nil {
				return "", nil, err
			}
			if o.direction != contentRepo.Ascending && o.direction != contentRepo.Descending {
				return "", nil, fmt.Errorf("%w: invalid sort direction %q", domain.ErrValidation, o.direction)
			}
			keys[i] = fmt.Sprintf("%s %s", o.field, o.direction)
		}
		fmt.Fprintf(&b, " ORDER BY %s", strings.Join(keys, ", "))
	}

	switch {
	case q.limit > 0:
		fmt.Fprintf(&b, " LIMIT %d", q.limit)
	case q.offset > 0 && q.db.Dialect() == repositories.DialectSQLite:
		// SQLite only accepts OFFSET after a LIMIT
		b.WriteString(" LIMIT -1")
	}
	if q.offset > 0 {
		fmt.Fprintf(&b, " OFFSET %d", q.offset)
	}

	return b.String(), args, nil
}

// selectColumns maps selected fields onto physical columns. Fields that are
// not columns are read out of meta, so meta is selected once on their behalf.
func (q *collectionQuery) selectColumns() ([]string, error) {
	if len(q.fields) == 0 {
		return []string{"*"}, nil
	}

	columns := make([]string, 0, len(q.fields)+1)
	needMeta := false
	for _, field := range q.fields {
		if !identifierPattern.MatchString(field) {
			return nil, fmt.Errorf("%w: invalid field name %q", domain.ErrValidation, field)
		}
		if !isColumn(field) {
			needMeta = true
			continue
		}
		if !slices.Contains(columns, field) {
			columns = append(columns, field)
		}
	}
	if needMeta && !slices.Contains(columns, "meta") {
		columns = append(columns, "meta")
	}
	return columns, nil
}

// buildWhere renders the WHERE clause with dialect placeholders
func (q *collectionQuery) buildWhere() (string, []any, error) {
	if len(q.conditions) == 0 {
		return "", nil, nil
	}

	dialect := q.db.Dialect()
	var args []any
	placeholder := func(v any) string {
		args = append(args, v)
		return dialect.Placeholder(len(args))
	}

	clauses := make([]string, len(q.conditions))
	for i, c := range q.conditions {
		if err := checkColumn(c.field); err != nil {
			return "", nil, err
		}
		switch c.op {
		case contentRepo.OpIsNull, contentRepo.OpIsNotNull:
			clauses[i] = fmt.Sprintf("%s %s", c.field, c.op)
		case contentRepo.OpIn:
			values, err := toSlice(c.value)
			if err != nil {
				return "", nil, err
			}
			marks := make([]string, len(values))
			for j, v := range values {
				marks[j] = placeholder(v)
			}
			clauses[i] = fmt.Sprintf("%s IN (%s)", c.field, strings.Join(marks, ", "))
		case contentRepo.OpEqual, contentRepo.OpNotEqual, contentRepo.OpGreater, contentRepo.OpLess,
			contentRepo.OpGreaterEqual, contentRepo.OpLessEqual, contentRepo.OpLike:
			clauses[i] = fmt.Sprintf("%s %s %s", c.field, c.op, placeholder(c.value))
		default:
			return "", nil, fmt.Errorf("%w: unsupported operator %q", domain.ErrValidation, c.op)
		}
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

// checkColumn rejects filters and sort keys on anything but physical columns
func checkColumn(field string) error {
	if !isColumn(field) {
		return fmt.Errorf("%w: %q is not a filterable column", domain.ErrValidation, field)
	}
	return nil
}

func toSlice(value any) ([]any, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice || rv.Len() == 0 {
		return nil, fmt.Errorf("%w: IN expects a non-empty list", domain.ErrValidation)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	case int:
		return n, nil
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	}
	return 0, fmt.Errorf("unexpected count type %T", v)
}

// rowToRecord converts a decoded row to a record. With an explicit selection
// only the selected fields are kept; otherwise every meta key is spread into
// the record's fields.
func rowToRecord(row repositories.Row, selected []string) models.Record {
	rec := models.Record{Fields: make(map[string]any)}
	meta, _ := row["meta"].(map[string]any)

	for col, v := range row {
		switch col {
		case "id":
			rec.ID = toString(v)
		case "path":
			rec.Path = toString(v)
		case "stem":
			rec.Stem = toString(v)
		case "title":
			rec.Title = toString(v)
		case "navigation":
			rec.Navigation = decodeNavigation(v)
		case "meta":
			if len(selected) == 0 || slices.Contains(selected, "meta") {
				rec.Fields["meta"] = v
			}
		default:
			rec.Fields[col] = v
		}
	}

	if len(selected) == 0 {
		for k, v := range meta {
			if _, taken := rec.Fields[k]; !taken && !isColumn(k) {
				rec.Fields[k] = v
			}
		}
	} else {
		for _, field := range selected {
			if isColumn(field) {
				continue
			}
			if v, ok := meta[field]; ok {
				rec.Fields[field] = v
			}
		}
	}

	if len(rec.Fields) == 0 {
		rec.Fields = nil
	}
	return rec
}

// decodeNavigation resolves the stored navigation value. Pages hidden from
// navigation are stored as the JSON string "false".
func decodeNavigation(v any) models.NavigationField {
	if s, ok := v.(string); ok && s == "false" {
		return models.ParseNavigationField(false)
	}
	return models.ParseNavigationField(v)
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	}
	return fmt.Sprint(v)
}
