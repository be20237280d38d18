// Package sqlq is a minimal SELECT statement builder.
/*

SQL Statement Builder

sqlq statement builder provides a way to:
- Combine a SELECT statement from fragments of raw SQL, one clause at a time,
- Compose statements with UNION ALL branches and parenthesized sub-queries,
- Reference parameters by :name and convert them into numbered
  PostgreSQL placeholders ($1, $2, etc) with a matching argument list.

Fragments are trusted SQL text. sqlq doesn't parse, validate or escape them.

	q := sqlq.New().
		AddSelect(`"id", "name"`).
		SetFrom(`"users"`).
		AddWhere(`"name" = :name`).
		AddOrder(`"name" ASC`).
		Paginate().
		AddParameter("name", "John").
		AddParameter("limit", 50).
		AddParameter("offset", 0)
	sql, args, err := q.Build()
	// SELECT "id", "name" FROM "users" WHERE "name" = $1 ORDER BY "name" ASC LIMIT $2 OFFSET $3;
	// [John 50 0]

Placeholders are replaced with plain text substitution. A :name that has no
parameter stays in the SQL as is. Use Unbound to detect such placeholders.
*/
package sqlq
