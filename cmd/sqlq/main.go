package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/leporo/sqlq"
	"github.com/leporo/sqlq/internal/config"
	"github.com/leporo/sqlq/internal/util"

	"gopkg.in/yaml.v3"
)

func main() {
	path := flag.String("f", "statement.yaml", "path to statement definition")
	raw := flag.Bool("raw", false, "print SQL without parameter substitution")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if err := run(*path, *raw, os.Stdout); err != nil {
		util.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(path string, raw bool, w io.Writer) error {
	st, err := config.Load(path)
	if err != nil {
		return err
	}
	q, err := st.Stmt()
	if err != nil {
		return err
	}
	defer q.Close()

	if raw {
		sql, err := q.SQL()
		if err != nil {
			return err
		}
		warnUnbound(q)
		_, err = fmt.Fprintln(w, sql)
		return err
	}

	sql, args, err := q.Build()
	if err != nil {
		return err
	}
	warnUnbound(q)
	util.Infof("built statement with %d argument(s)", len(args))
	if _, err := fmt.Fprintln(w, sql); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	data, err := yaml.Marshal(args)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func warnUnbound(q *sqlq.Stmt) {
	unbound, err := q.Unbound()
	if err != nil {
		util.Warnf("placeholder check skipped: %v", err)
		return
	}
	for _, name := range unbound {
		util.Warnf("no parameter for placeholder :%s", name)
	}
}
