package sqlq

import (
	"github.com/pkg/errors"
)

// ErrEmptyStatement is returned when a statement has neither
// columns nor union branches to render.
var ErrEmptyStatement = errors.New("sqlq: empty select statement")
