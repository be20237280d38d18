package sqlq

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

// SubQuery wraps a statement or a condition in parentheses.
func SubQuery(sql string) string {
	return "(" + sql + ")"
}

/*
SQL renders the statement without parameter substitution.

Named placeholders are left as they are:

	q := sqlq.New().AddSelect("id").SetFrom("users").AddWhere("id = :id")
	sql, _ := q.SQL()
	// SELECT id FROM users WHERE id = :id

Clauses are rendered in a fixed order: SELECT and FROM (or UNION ALL
branches), joins, WHERE, GROUP BY, HAVING, ORDER BY, pagination.
Every run of whitespace in the result, including newlines of
multi-line fragments, is collapsed to a single space.

SQL returns ErrEmptyStatement if the statement has neither
columns nor union branches.
*/
func (q *Stmt) SQL() (string, error) {
	if len(q.unions) == 0 && len(q.selects) == 0 {
		return "", ErrEmptyStatement
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if len(q.unions) > 0 {
		writeJoined(buf, q.unions, " UNION ALL ")
	} else {
		buf.WriteString("SELECT ")
		if cols := q.columns(); cols != "" {
			buf.WriteString(cols)
		} else {
			buf.WriteByte('*')
		}
		if q.from != "" {
			buf.WriteString("\nFROM ")
			buf.WriteString(q.from)
		}
	}

	if len(q.joins) > 0 {
		buf.WriteByte('\n')
		writeJoined(buf, q.joins, " ")
	}
	writeClause(buf, "WHERE ", q.wheres, " AND ")
	writeClause(buf, "GROUP BY ", q.groups, ", ")
	writeClause(buf, "HAVING ", q.havings, " AND ")
	writeClause(buf, "ORDER BY ", q.orders, ", ")
	if q.pagination != "" {
		buf.WriteByte('\n')
		buf.WriteString(q.pagination)
	}

	return collapseSpace(buf.B), nil
}

// String implements fmt.Stringer. It returns the SQL result,
// or an empty string if the statement can't be rendered.
func (q *Stmt) String() string {
	sql, _ := q.SQL()
	return sql
}

// AsSubQuery renders the statement and wraps it in parentheses,
// ready to be passed to AddUnion or AddWhere of another statement.
func (q *Stmt) AsSubQuery() (string, error) {
	sql, err := q.SQL()
	if err != nil {
		return "", err
	}
	return SubQuery(sql), nil
}

/*
Build renders the statement and replaces named placeholders with
numbered positional ones.

Parameters are processed in table order. The n-th parameter replaces
every :name occurrence with $n, so a name referenced several times
maps to a single argument. A parameter not referenced by the statement
still takes a number and an argument slot.

Placeholders without a parameter are left untouched and will fail
at execution time. Use Unbound to find them.

The returned SQL is terminated with a semicolon.
*/
func (q *Stmt) Build() (sql string, args []interface{}, err error) {
	sql, err = q.SQL()
	if err != nil {
		return "", nil, err
	}

	args = make([]interface{}, 0, q.params.len())
	for n, name := range q.params.names {
		sql = strings.ReplaceAll(sql, ":"+name, "$"+strconv.Itoa(n+1))
		args = append(args, q.params.values[name])
	}
	return sql + ";", args, nil
}

// columns returns the SELECT column list.
func (q *Stmt) columns() string {
	if len(q.selects) == 1 {
		return q.selects[0]
	}
	items := make([]string, 0, len(q.selects)*2)
	for _, fragment := range q.selects {
		for _, item := range strings.Split(fragment, ",") {
			items = append(items, strings.TrimSpace(item))
		}
	}
	return strings.Join(items, ", ")
}

func writeClause(buf *bytebufferpool.ByteBuffer, clause string, fragments []string, sep string) {
	if len(fragments) == 0 {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(clause)
	writeJoined(buf, fragments, sep)
}

func writeJoined(buf *bytebufferpool.ByteBuffer, fragments []string, sep string) {
	for n, fragment := range fragments {
		if n > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(fragment)
	}
}

// collapseSpace replaces every run of whitespace in s with a single
// space and trims whitespace at both ends.
func collapseSpace(s []byte) string {
	out := bytebufferpool.Get()
	defer bytebufferpool.Put(out)

	space := false
	for len(s) > 0 {
		r, size := utf8.DecodeRune(s)
		if unicode.IsSpace(r) {
			space = true
		} else {
			if space && out.Len() > 0 {
				out.WriteByte(' ')
			}
			space = false
			out.Write(s[:size])
		}
		s = s[size:]
	}
	return out.String()
}
