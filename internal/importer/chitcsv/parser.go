// Package chitcsv reads chits from CSV files exported by spreadsheets or
// older cashbook tools.
package chitcsv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
	enc "github.com/MrJamesThe3rd/cashbook/internal/encoding"
)

var ErrNoHeader = errors.New("no known chit header found")

var dateLayouts = []string{"2006-01-02", "2.1.2006"}

type Parser struct {
	charset string
}

// NewParser returns a parser decoding input from charset, or detecting the
// charset when it is empty.
func NewParser(charset string) *Parser {
	return &Parser{charset: charset}
}

// Parse reads every chit of the file. Any invalid row fails the whole file.
func (p *Parser) Parse(r io.Reader) ([]cashbook.ChitInput, error) {
	utf8r, err := enc.NewReader(r, p.charset)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	for _, comma := range []rune{';', ','} {
		rows, err := readRows(data, comma)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows)
		if profile == nil {
			continue
		}

		return parseRows(profile, cols, rows[headerIdx+1:])
	}

	return nil, ErrNoHeader
}

// record is a CSV row with the 1-based file line it starts on. Empty lines
// are skipped by the reader, so lines are not consecutive.
type record struct {
	line   int
	fields []string
}

func readRows(data []byte, comma rune) ([]record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []record

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}

		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, record{line: line, fields: fields})
	}
}

type colIndex map[string]int

func detectProfile(rows []record) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row.fields {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows turns data rows into chits. Errors name the file line of the
// offending row.
func parseRows(p *Profile, cols colIndex, rows []record) ([]cashbook.ChitInput, error) {
	var (
		chits   []cashbook.ChitInput
		lastKey string
	)

	for _, rec := range rows {
		row := rec.fields

		if isBlank(row) {
			continue
		}

		item, err := parseItem(p, cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rec.line, err)
		}

		key := cell(row, cols, p.ChitCol)
		if key != "" && key == lastKey {
			last := &chits[len(chits)-1]
			last.Items = append(last.Items, item)

			continue
		}

		body, method, err := parseHead(p, cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rec.line, err)
		}

		chits = append(chits, cashbook.ChitInput{
			Body:   body,
			Method: method,
			Items:  []cashbook.ItemInput{item},
		})
		lastKey = key
	}

	return chits, nil
}

func parseHead(p *Profile, cols colIndex, row []string) (cashbook.ChitBody, cashbook.PaymentMethod, error) {
	date, err := parseDate(cell(row, cols, p.DateCol))
	if err != nil {
		return cashbook.ChitBody{}, "", err
	}

	var (
		number    *cashbook.ChitNumber
		recipient *cashbook.Recipient
	)

	if s := cell(row, cols, p.NumberCol); s != "" {
		n, err := cashbook.NewChitNumber(s)
		if err != nil {
			return cashbook.ChitBody{}, "", err
		}

		number = &n
	}

	if s := cell(row, cols, p.RecipientCol); s != "" {
		r, err := cashbook.NewRecipient(s)
		if err != nil {
			return cashbook.ChitBody{}, "", err
		}

		recipient = &r
	}

	method := cashbook.PaymentMethodCash

	if s := strings.ToLower(cell(row, cols, p.MethodCol)); s != "" {
		m, ok := p.Methods[s]
		if !ok {
			return cashbook.ChitBody{}, "", fmt.Errorf("%w: unknown payment method %q", cashbook.ErrInvalidArgument, s)
		}

		method = m
	}

	return cashbook.NewChitBody(number, date, recipient), method, nil
}

func parseItem(p *Profile, cols colIndex, row []string) (cashbook.ItemInput, error) {
	amount, err := cashbook.NewAmount(cell(row, cols, p.AmountCol))
	if err != nil {
		return cashbook.ItemInput{}, err
	}

	categoryID, err := strconv.Atoi(cell(row, cols, p.CategoryCol))
	if err != nil {
		return cashbook.ItemInput{}, fmt.Errorf("%w: category %q is not a number", cashbook.ErrInvalidArgument, cell(row, cols, p.CategoryCol))
	}

	return cashbook.ItemInput{
		Amount:     amount,
		CategoryID: categoryID,
		Purpose:    cell(row, cols, p.PurposeCol),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: invalid date %q", cashbook.ErrInvalidArgument, s)
}

// cell returns the trimmed value of the named column, or "" when the
// column is absent.
func cell(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
