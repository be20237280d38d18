package config

import (
	"os"

	"github.com/leporo/sqlq"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Statement describes a SELECT statement built by sqlq.
type Statement struct {
	Unions     []Statement `yaml:"unions"`
	Select     []string    `yaml:"select"`
	From       string      `yaml:"from"`
	Joins      []string    `yaml:"joins"`
	Where      []string    `yaml:"where"`
	Group      []string    `yaml:"group"`
	Having     []string    `yaml:"having"`
	Order      []string    `yaml:"order"`
	Pagination *string     `yaml:"pagination"`
	// Parameters is a mapping kept as a node so that
	// parameters are bound in document order.
	Parameters yaml.Node `yaml:"parameters"`
}

// Load reads a statement definition from a YAML file.
func Load(path string) (*Statement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	st, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return st, nil
}

// Parse decodes a statement definition.
func Parse(data []byte) (*Statement, error) {
	var st Statement
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

/*
Stmt assembles a sqlq statement.

Every union branch is rendered without parameter substitution and
wrapped in parentheses. Parameters of union branches are bound to the
resulting statement in branch order, followed by the statement's own
parameters.

A present but empty pagination selects sqlq.DefaultPagination.
*/
func (st *Statement) Stmt() (*sqlq.Stmt, error) {
	q := sqlq.New()
	if err := st.apply(q); err != nil {
		q.Close()
		return nil, err
	}
	return q, nil
}

func (st *Statement) apply(q *sqlq.Stmt) error {
	for n := range st.Unions {
		branch := &st.Unions[n]
		sub := sqlq.New()
		err := branch.apply(sub)
		if err == nil {
			var sql string
			sql, err = sub.AsSubQuery()
			if err == nil {
				q.AddUnion(sql)
				q.AddNamed(sub.Parameters()...)
			}
		}
		sub.Close()
		if err != nil {
			return errors.Wrapf(err, "union branch %d", n+1)
		}
	}
	for _, fragment := range st.Select {
		q.AddSelect(fragment)
	}
	if st.From != "" {
		q.SetFrom(st.From)
	}
	for _, fragment := range st.Joins {
		q.AddJoin(fragment)
	}
	for _, fragment := range st.Where {
		q.AddWhere(fragment)
	}
	for _, fragment := range st.Group {
		q.AddGroup(fragment)
	}
	for _, fragment := range st.Having {
		q.AddHaving(fragment)
	}
	for _, fragment := range st.Order {
		q.AddOrder(fragment)
	}
	if st.Pagination != nil {
		q.SetPagination(*st.Pagination)
	}
	return bindParameters(q, &st.Parameters)
}

func bindParameters(q *sqlq.Stmt, node *yaml.Node) error {
	switch node.Kind {
	case 0:
		return nil
	case yaml.MappingNode:
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		fallthrough
	default:
		return errors.Errorf("line %d: parameters must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var value interface{}
		if err := val.Decode(&value); err != nil {
			return errors.Wrapf(err, "parameter %q", key.Value)
		}
		q.AddParameter(key.Value, value)
	}
	return nil
}
