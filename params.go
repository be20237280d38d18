package sqlq

import (
	"database/sql"
	"fmt"
	"reflect"
	"sort"

	"github.com/mitranim/refut"
)

// Params maps parameter names to values for AddParameters.
type Params map[string]interface{}

// paramTable keeps named parameters in insertion order.
// Setting an existing name replaces its value and keeps its position.
type paramTable struct {
	names  []string
	values map[string]interface{}
}

func (t *paramTable) set(name string, value interface{}) {
	if t.values == nil {
		t.values = make(map[string]interface{})
	}
	if _, ok := t.values[name]; !ok {
		t.names = append(t.names, name)
	}
	t.values[name] = value
}

func (t *paramTable) has(name string) bool {
	_, ok := t.values[name]
	return ok
}

func (t *paramTable) len() int {
	return len(t.names)
}

func (t *paramTable) clone() paramTable {
	if len(t.names) == 0 {
		return paramTable{}
	}
	c := paramTable{
		names:  cloneStrings(t.names),
		values: make(map[string]interface{}, len(t.values)),
	}
	for k, v := range t.values {
		c.values[k] = v
	}
	return c
}

func (t *paramTable) reset() {
	for n := range t.names {
		delete(t.values, t.names[n])
	}
	t.names = t.names[:0]
}

/*
AddParameters merges named parameter values into the statement.

Parameters are numbered in the order they were first added.
A name that is already known gets a new value but keeps its number.

As map iteration order is random, names that are new to the statement
are added in ascending order. Use AddParameter, AddNamed or AddStruct
when the order of positional arguments matters:

	q.AddParameters(sqlq.Params{"limit": 100, "offset": 200})
	// LIMIT $1 OFFSET $2, [100 200]
*/
func (q *Stmt) AddParameters(params Params) *Stmt {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		q.params.set(name, params[name])
	}
	return q
}

// AddParameter sets a single named parameter value.
func (q *Stmt) AddParameter(name string, value interface{}) *Stmt {
	q.params.set(name, value)
	return q
}

/*
AddNamed sets named parameters in argument order:

	q.AddNamed(sql.Named("name", "John"), sql.Named("id", 42))
*/
func (q *Stmt) AddNamed(args ...sql.NamedArg) *Stmt {
	for _, arg := range args {
		q.params.set(arg.Name, arg.Value)
	}
	return q
}

/*
AddStruct sets named parameters from fields of a struct
tagged with `db:"name"`, in field declaration order.
Fields of embedded structs are included.

	var filter struct {
		ID   int    `db:"id"`
		Name string `db:"name"`
	}
	q.AddStruct(&filter)

Untagged fields and fields tagged `db:"-"` are skipped.
A nil pointer adds nothing. AddStruct panics if src is not a struct
or a pointer to a struct.
*/
func (q *Stmt) AddStruct(src interface{}) *Stmt {
	if src == nil {
		panic("sqlq: AddStruct expects a struct, got nil")
	}
	rval := reflect.ValueOf(src)
	rtype := refut.RtypeDeref(rval.Type())
	if rtype.Kind() != reflect.Struct {
		panic(fmt.Sprintf("sqlq: AddStruct expects a struct, got %v", rval.Type()))
	}
	if refut.IsRvalNil(rval) {
		return q
	}
	for rval.Kind() == reflect.Ptr {
		rval = rval.Elem()
		if refut.IsRvalNil(rval) {
			return q
		}
	}

	err := refut.TraverseStructRval(rval, func(rval reflect.Value, sfield reflect.StructField, _ []int) error {
		name := refut.TagIdent(sfield.Tag.Get("db"))
		// Unexported fields can't be read via Interface.
		if name == "" || sfield.PkgPath != "" {
			return nil
		}
		q.params.set(name, rval.Interface())
		return nil
	})
	if err != nil {
		panic(err)
	}
	return q
}

// Parameters returns a copy of the parameter table in binding order.
func (q *Stmt) Parameters() []sql.NamedArg {
	if q.params.len() == 0 {
		return nil
	}
	args := make([]sql.NamedArg, 0, q.params.len())
	for _, name := range q.params.names {
		args = append(args, sql.Named(name, q.params.values[name]))
	}
	return args
}
