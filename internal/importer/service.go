package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
	"github.com/MrJamesThe3rd/cashbook/internal/importer/chitcsv"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Import parses r in the given format. charset may be empty to detect it.
func (s *Service) Import(format Format, charset string, r io.Reader) ([]cashbook.ChitInput, error) {
	var importer Importer

	switch format {
	case FormatChitCSV, "":
		importer = chitcsv.NewParser(charset)
	default:
		return nil, fmt.Errorf("%w: unknown import format %q", cashbook.ErrInvalidArgument, format)
	}

	return importer.Parse(r)
}
