package sqlq_test

import (
	"fmt"
	"testing"

	"github.com/leporo/sqlq"
)

var s string

func BenchmarkSQL(b *testing.B) {
	for i := 0; i < b.N; i++ {
		q := sqlq.New().AddSelect("id").SetFrom("table").AddWhere("id > :min").AddWhere("id < :max")
		s, _ = q.SQL()
		q.Close()
	}
}

func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		q := sqlq.New().
			AddSelect("id").
			SetFrom("table").
			AddWhere("id > :min").
			AddWhere("id < :max").
			AddParameter("min", 42).
			AddParameter("max", 1000)
		s, _, _ = q.Build()
		q.Close()
	}
}

func BenchmarkManyFields(b *testing.B) {
	fields := make([]string, 0, 100)

	for n := 1; n <= cap(fields); n++ {
		fields = append(fields, fmt.Sprintf("field_%d", n))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q := sqlq.New().AddSelect("id").SetFrom("table").AddWhere("id > :min").AddParameter("min", 42)
		for _, field := range fields {
			q.AddSelect(field)
		}
		s, _, _ = q.Build()
		q.Close()
	}
}

func BenchmarkMultilineFragments(b *testing.B) {
	fields := `
		"users"."id" AS "users.id",
		"users"."name" AS "users.name",
		"users"."email" AS "users.email"
	`
	for i := 0; i < b.N; i++ {
		q := sqlq.New().
			AddSelect(fields).
			SetFrom(`"users"`).
			AddJoin(`INNER JOIN "pets" ON "pets"."ownerId" = "users"."id"`).
			Paginate().
			AddParameters(sqlq.Params{"limit": 10, "offset": 0})
		s, _, _ = q.Build()
		q.Close()
	}
}
