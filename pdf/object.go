package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Object is a PDF value written in its file syntax by String. Only the
// value kinds the writer emits are modelled.
type Object interface {
	String() string
}

// Int represents a PDF integer
type Int int64

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Real represents a PDF real number, written with at most two decimals
type Real float64

func (r Real) String() string { return formatNumber(float64(r)) }

// String is a PDF literal string holding already encoded bytes
type String []byte

func (s String) String() string {
	var b bytes.Buffer
	b.WriteByte('(')
	for _, c := range s {
		switch c {
		case '\\', '(', ')':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// HexString is a PDF hexadecimal string
type HexString []byte

func (s HexString) String() string { return fmt.Sprintf("<%X>", []byte(s)) }

// Name represents a PDF name
type Name string

func (n Name) String() string { return "/" + string(n) }

// Array represents a PDF array
type Array []Object

func (a Array) String() string {
	parts := make([]string, 0, len(a))
	for _, obj := range a {
		parts = append(parts, obj.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Dict represents a PDF dictionary. Keys are written in sorted order so
// output is byte-for-byte reproducible.
type Dict map[string]Object

func (d Dict) String() string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("/%s %s", key, d[key].String()))
	}
	return "<< " + strings.Join(parts, " ") + " >>"
}

// IndirectRef represents an indirect object reference
type IndirectRef struct {
	Number     int
	Generation int
}

func (r IndirectRef) String() string {
	return fmt.Sprintf("%d %d R", r.Number, r.Generation)
}

// formatNumber writes v with up to two decimals and no trailing zeros
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
