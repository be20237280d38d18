package sqlq

/*
Stmt accumulates SQL fragments of a SELECT statement and the named
parameters referenced by those fragments.

Use New to get an empty statement:

	q := sqlq.New().
		AddSelect(`"id", "name", "email"`).
		SetFrom(`"users"`).
		AddWhere(`"id" = :id`).
		AddParameters(sqlq.Params{"id": 42})
	sql, args, err := q.Build()
	q.Close()
	// SELECT "id", "name", "email" FROM "users" WHERE "id" = $1;
	// [42]

Every Add and Set method returns the receiver, so calls can be chained.
Fragments are trusted SQL text and are never parsed or escaped.

A Stmt is owned by a single caller. It is not safe for concurrent use.
*/
type Stmt struct {
	unions     []string
	selects    []string
	joins      []string
	wheres     []string
	groups     []string
	havings    []string
	orders     []string
	from       string
	pagination string
	params     paramTable
	dest       []interface{}
}

// DefaultPagination is the fragment SetPagination uses when called with an empty string.
const DefaultPagination = "LIMIT :limit OFFSET :offset"

/*
AddUnion appends a UNION ALL branch.

A branch is expected to be a parenthesized statement:

	q.AddUnion(sqlq.SubQuery(sellersSQL)).
		AddUnion(sqlq.SubQuery(customersSQL))

When a statement has union branches, its AddSelect and SetFrom
fragments are not rendered.
*/
func (q *Stmt) AddUnion(fragment string) *Stmt {
	q.unions = append(q.unions, fragment)
	return q
}

/*
AddSelect appends a column list fragment.

A single fragment is rendered as is. When AddSelect is called
more than once, every fragment is split on commas and the trimmed
items are joined back into a single list:

	q.AddSelect(`
		"users"."id",
		"users"."name"
	`).AddSelect(`"pets"."name"`)
	// SELECT "users"."id", "users"."name", "pets"."name"

A statement without column fragments selects *.
*/
func (q *Stmt) AddSelect(fragment string) *Stmt {
	q.selects = append(q.selects, fragment)
	return q
}

// SetFrom replaces the FROM clause source.
func (q *Stmt) SetFrom(fragment string) *Stmt {
	q.from = fragment
	return q
}

/*
AddJoin appends a join fragment. A fragment carries its own
join keyword and condition:

	q.AddJoin(`INNER JOIN "pets" ON "pets"."ownerId" = "users"."id"`)
*/
func (q *Stmt) AddJoin(fragment string) *Stmt {
	q.joins = append(q.joins, fragment)
	return q
}

/*
AddWhere appends a filter. Filters are joined with AND.

Wrap a fragment with SubQuery to group OR conditions:

	q.AddWhere(sqlq.SubQuery(`"email" LIKE '%gmail.com' OR "email" LIKE '%hotmail.com'`)).
		AddWhere(`"age" > :age`)
*/
func (q *Stmt) AddWhere(fragment string) *Stmt {
	q.wheres = append(q.wheres, fragment)
	return q
}

// AddGroup appends a GROUP BY expression.
func (q *Stmt) AddGroup(fragment string) *Stmt {
	q.groups = append(q.groups, fragment)
	return q
}

// AddHaving appends a HAVING condition. Conditions are joined with AND.
func (q *Stmt) AddHaving(fragment string) *Stmt {
	q.havings = append(q.havings, fragment)
	return q
}

// AddOrder appends an ORDER BY expression.
func (q *Stmt) AddOrder(fragment string) *Stmt {
	q.orders = append(q.orders, fragment)
	return q
}

/*
SetPagination replaces the pagination fragment rendered at the end
of a statement:

	q.SetPagination("LIMIT :limit")

An empty fragment selects DefaultPagination, which expects
limit and offset parameters.
*/
func (q *Stmt) SetPagination(fragment string) *Stmt {
	if fragment == "" {
		fragment = DefaultPagination
	}
	q.pagination = fragment
	return q
}

// Paginate sets DefaultPagination.
func (q *Stmt) Paginate() *Stmt {
	return q.SetPagination("")
}

/*
To sets scan targets for the selected columns.

Accepts value pointers to be passed to sql.Rows.Scan by
Query and QueryRow methods. Targets are appended in call order,
so call To in the order columns are selected.
*/
func (q *Stmt) To(dest ...interface{}) *Stmt {
	q.dest = append(q.dest, dest...)
	return q
}

// Dest returns the scan targets passed via To method calls.
func (q *Stmt) Dest() []interface{} {
	return q.dest
}

// Clone creates an independent copy of the statement.
func (q *Stmt) Clone() *Stmt {
	return &Stmt{
		unions:     cloneStrings(q.unions),
		selects:    cloneStrings(q.selects),
		joins:      cloneStrings(q.joins),
		wheres:     cloneStrings(q.wheres),
		groups:     cloneStrings(q.groups),
		havings:    cloneStrings(q.havings),
		orders:     cloneStrings(q.orders),
		from:       q.from,
		pagination: q.pagination,
		params:     q.params.clone(),
		dest:       append([]interface{}(nil), q.dest...),
	}
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
