package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// sqlWriter accumulates the statement text and its bind arguments while
// conditions render themselves. bind reserves the next $N placeholder.
type sqlWriter struct {
	buf  strings.Builder
	args []any
}

func (w *sqlWriter) raw(s string) {
	w.buf.WriteString(s)
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

type Condition interface {
	render(w *sqlWriter)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) render(w *sqlWriter) {
	w.raw(c.column)
	w.raw(" = ")
	w.bind(c.value)
}

type eqFoldCondition struct {
	column string
	value  string
}

// EqFold matches a text column case-insensitively by folding both sides
// through lower().
func EqFold(column, value string) Condition {
	return eqFoldCondition{column: column, value: value}
}

func (c eqFoldCondition) render(w *sqlWriter) {
	w.raw("lower(")
	w.raw(c.column)
	w.raw(") = lower(")
	w.bind(c.value)
	w.raw(")")
}

type inCondition struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

// InStrings is In for the string identifier sets lineage expansion produces.
func InStrings(column string, values []string) Condition {
	anys := make([]any, len(values))
	for i, v := range values {
		anys[i] = v
	}
	return inCondition{column: column, values: anys}
}

// An empty IN set can never match, so it renders as a constant-false
// predicate instead of invalid SQL.
func (c inCondition) render(w *sqlWriter) {
	if len(c.values) == 0 {
		w.raw("1=0")
		return
	}
	w.raw(c.column)
	w.raw(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.raw(", ")
		}
		w.bind(v)
	}
	w.raw(")")
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) render(w *sqlWriter) {
	w.raw(c.column)
	w.raw(" IS NULL")
}

type groupCondition struct {
	joiner     string
	conditions []Condition
}

// And groups conditions with AND inside parentheses, for nesting under Or.
func And(conditions ...Condition) Condition {
	return groupCondition{joiner: " AND ", conditions: conditions}
}

// Or groups conditions with OR inside parentheses. Symmetric matchup queries
// need (home vs away) OR (away vs home) without string assembly at call
// sites.
func Or(conditions ...Condition) Condition {
	return groupCondition{joiner: " OR ", conditions: conditions}
}

func (c groupCondition) render(w *sqlWriter) {
	if len(c.conditions) == 0 {
		w.raw("1=1")
		return
	}
	w.raw("(")
	for i, cond := range c.conditions {
		if i > 0 {
			w.raw(c.joiner)
		}
		cond.render(w)
	}
	w.raw(")")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr embeds a raw fragment; each ? consumes one arg and becomes the next
// $N placeholder.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) render(w *sqlWriter) {
	if len(c.args) == 0 {
		w.raw(c.expr)
		return
	}
	next := 0
	for i := 0; i < len(c.expr); i++ {
		if c.expr[i] == '?' && next < len(c.args) {
			w.bind(c.args[next])
			next++
			continue
		}
		w.buf.WriteByte(c.expr[i])
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	groupBy []string
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := &sqlWriter{args: make([]any, 0, len(b.where))}
	w.raw("SELECT ")
	w.raw(strings.Join(b.columns, ", "))
	w.raw(" FROM ")
	w.raw(b.table)

	if len(b.where) > 0 {
		w.raw(" WHERE ")
		for i, c := range b.where {
			if i > 0 {
				w.raw(" AND ")
			}
			c.render(w)
		}
	}
	if len(b.groupBy) > 0 {
		w.raw(" GROUP BY ")
		w.raw(strings.Join(b.groupBy, ", "))
	}
	if len(b.orderBy) > 0 {
		w.raw(" ORDER BY ")
		w.raw(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.raw(" LIMIT ")
		w.raw(strconv.Itoa(b.limit))
	}

	return w.buf.String(), w.args, nil
}
