package sqlq

import (
	"fmt"

	"github.com/mitranim/sqlp"
	"github.com/pkg/errors"
)

/*
Placeholders returns distinct named placeholders of the rendered
statement in order of their first appearance.

Text of quoted strings, quoted identifiers and comments is skipped,
as are type casts like ::text. Placeholders does not affect Build,
which replaces :name tokens anywhere in the text.
*/
func (q *Stmt) Placeholders() ([]string, error) {
	sql, err := q.SQL()
	if err != nil {
		return nil, err
	}
	return namedParams(sql)
}

/*
Unbound returns named placeholders the statement has no parameters for.

Build leaves such placeholders in the SQL text as they are,
so the statement fails when executed.
*/
func (q *Stmt) Unbound() ([]string, error) {
	names, err := q.Placeholders()
	if err != nil {
		return nil, err
	}
	var unbound []string
	for _, name := range names {
		if !q.params.has(name) {
			unbound = append(unbound, name)
		}
	}
	return unbound, nil
}

func namedParams(src string) (names []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			names, err = nil, errors.Wrap(cause, "sqlq: failed to tokenize statement")
		}
	}()

	seen := make(map[sqlp.NodeNamedParam]struct{})
	tokenizer := sqlp.Tokenizer{Source: src}
	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}
		param, ok := node.(sqlp.NodeNamedParam)
		if !ok {
			continue
		}
		if _, ok := seen[param]; ok {
			continue
		}
		seen[param] = struct{}{}
		names = append(names, string(param))
	}
	return names, nil
}
