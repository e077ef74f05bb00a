package importer

import (
	"io"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

type Format string

const (
	FormatChitCSV Format = "chit_csv"
)

type Importer interface {
	Parse(r io.Reader) ([]cashbook.ChitInput, error)
}
