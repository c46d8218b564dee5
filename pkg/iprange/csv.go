package iprange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"strings"
)

// ParseCSV reads a headerless range list. Column 0 of every row is a CIDR,
// the remaining columns are rejoined with commas to form the descriptor.
//
// Any row whose first column is not a valid CIDR, or that is not valid CSV,
// fails the whole parse with ErrMalformedRow: a skipped row could hide a real
// network membership. Errors from r itself are returned as they are, so
// callers can tell a broken read from broken data.
func ParseCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	var table Table
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, errors.Join(ErrMalformedRow, err)
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		prefix, err := netip.ParsePrefix(record[0])
		if err != nil {
			return nil, errors.Join(ErrMalformedRow, fmt.Errorf("line %d: %w", line, err))
		}

		table = append(table, Range{
			Network:    prefix,
			Descriptor: strings.Join(record[1:], ","),
		})
	}

	return table, nil
}
