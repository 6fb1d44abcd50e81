package mock

import (
	"io"

	"github.com/fwojciec/confindex"
)

var _ confindex.Parser = (*Parser)(nil)

// Parser is a mock implementation of confindex.Parser.
type Parser struct {
	ParseFn func(fileName string, r io.Reader, lastID int64) (*confindex.Index, error)
}

func (p *Parser) Parse(fileName string, r io.Reader, lastID int64) (*confindex.Index, error) {
	return p.ParseFn(fileName, r, lastID)
}
