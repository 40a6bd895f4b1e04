package importers

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const byteOrderMark = '\uFEFF'

// delimitedReader reads records of delimited text. Unlike encoding/csv the
// enclosure and the escape character are configurable.
//
// Inside an enclosed field a doubled enclosure stands for one enclosure, and
// the escape character keeps the enclosure (or another escape) that follows
// it. Outside enclosures both are ordinary characters. Line breaks inside
// enclosures belong to the field. Empty lines are skipped.
type delimitedReader struct {
	r         *bufio.Reader
	delimiter rune
	enclosure rune
	escape    rune // 0 disables escaping
	started   bool
}

func newDelimitedReader(r io.Reader, delimiter, enclosure, escape rune) *delimitedReader {
	return &delimitedReader{
		r:         bufio.NewReader(r),
		delimiter: delimiter,
		enclosure: enclosure,
		escape:    escape,
	}
}

// Read returns the next record, or io.EOF when the input is exhausted.
func (d *delimitedReader) Read() ([]string, error) {
	for {
		record, err := d.readRecord()
		if err != nil {
			return nil, err
		}
		if len(record) == 1 && record[0] == "" {
			continue
		}
		return record, nil
	}
}

// readRecord reads one physical record. A blank line yields a single empty
// field; callers skip it.
func (d *delimitedReader) readRecord() ([]string, error) {
	var (
		fields   []string
		field    strings.Builder
		enclosed bool
		quoted   bool
		consumed bool
	)

	for {
		r, err := d.next()
		if errors.Is(err, io.EOF) {
			if !consumed {
				return nil, io.EOF
			}
			return append(fields, field.String()), nil
		}
		if err != nil {
			return nil, err
		}
		consumed = true

		if enclosed {
			switch {
			case d.escape != 0 && d.escape != d.enclosure && r == d.escape:
				following, ok := d.peek()
				if ok && (following == d.enclosure || following == d.escape) {
					d.skip()
					field.WriteRune(following)
				} else {
					field.WriteRune(r)
				}
			case r == d.enclosure:
				if following, ok := d.peek(); ok && following == d.enclosure {
					d.skip()
					field.WriteRune(d.enclosure)
				} else {
					enclosed = false
				}
			default:
				field.WriteRune(r)
			}
			continue
		}

		switch {
		case r == d.delimiter:
			fields = append(fields, field.String())
			field.Reset()
			quoted = false
		case r == '\n':
			return append(fields, field.String()), nil
		case r == '\r':
			if following, ok := d.peek(); ok && following == '\n' {
				d.skip()
			}
			return append(fields, field.String()), nil
		case r == d.enclosure && field.Len() == 0 && !quoted:
			enclosed = true
			quoted = true
		default:
			field.WriteRune(r)
		}
	}
}

func (d *delimitedReader) next() (rune, error) {
	r, _, err := d.r.ReadRune()
	if err != nil {
		return 0, err
	}
	if !d.started {
		d.started = true
		if r == byteOrderMark {
			return d.next()
		}
	}
	return r, nil
}

func (d *delimitedReader) peek() (rune, bool) {
	r, _, err := d.r.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = d.r.UnreadRune()
	return r, true
}

func (d *delimitedReader) skip() {
	_, _, _ = d.r.ReadRune()
}
