package sqlq

import (
	"sync"
)

var stmtPool = sync.Pool{New: newStmt}

func newStmt() interface{} {
	return &Stmt{}
}

/*
New returns an empty statement builder.

Call Close once a statement is no longer needed to let the builder
be reused:

	q := sqlq.New().AddSelect("id").SetFrom("users")
	sql, args, err := q.Build()
	q.Close()

Values returned by Build remain valid after Close.
*/
func New() *Stmt {
	return stmtPool.Get().(*Stmt)
}

/*
Close resets the statement and puts it back to a pool for reuse
by New.

Stmt instance should not be used after Close method call.
*/
func (q *Stmt) Close() {
	q.reset()
	stmtPool.Put(q)
}

// reset clears the statement keeping allocated memory.
func (q *Stmt) reset() {
	q.unions = q.unions[:0]
	q.selects = q.selects[:0]
	q.joins = q.joins[:0]
	q.wheres = q.wheres[:0]
	q.groups = q.groups[:0]
	q.havings = q.havings[:0]
	q.orders = q.orders[:0]
	q.from = ""
	q.pagination = ""
	q.params.reset()
	for n := range q.dest {
		q.dest[n] = nil
	}
	q.dest = q.dest[:0]
}
