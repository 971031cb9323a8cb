package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Column headings in display and file order.
var Columns = []string{
	"Name",
	"Herkunft/Region",
	"Milchart",
	"Konsistenz",
	"Charakteristik",
	"Fettgehalt",
	"Reifezeit",
	"Jahrgang",
	"Geschmacksprofil",
	"Lochung",
	"Rinde",
	"Besondere Merkmale",
	"Paarungsempfehlungen",
	"ADR",
	"MICM",
	"STLA",
	"Preis pro Kg",
	"Foto",
}

// ColumnCount is the number of fields in every record.
const ColumnCount = 18

// constrained maps a column index to the heading whose values come from the OptionSet.
var constrained = map[int]string{
	2:  "Milchart",
	3:  "Konsistenz",
	4:  "Charakteristik",
	8:  "Geschmacksprofil",
	9:  "Lochung",
	10: "Rinde",
	13: "ADR",
	14: "MICM",
	15: "STLA",
}

// ConstrainedColumns returns the headings restricted to a fixed vocabulary, in column order.
func ConstrainedColumns() []string {
	var headings []string
	for i, h := range Columns {
		if _, ok := constrained[i]; ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// IsConstrained reports whether the column at index col is a dropdown column.
func IsConstrained(col int) bool {
	_, ok := constrained[col]
	return ok
}

// ColumnIndex returns the index of heading, or -1.
func ColumnIndex(heading string) int {
	for i, h := range Columns {
		if h == heading {
			return i
		}
	}
	return -1
}

// Record is one cheese entry with its values stored in column order.
type Record [ColumnCount]string

// Get returns the value stored under heading, or "" for unknown headings.
func (r Record) Get(heading string) string {
	if i := ColumnIndex(heading); i >= 0 {
		return r[i]
	}
	return ""
}

// Set stores value under heading. Unknown headings are ignored.
func (r *Record) Set(heading, value string) {
	if i := ColumnIndex(heading); i >= 0 {
		r[i] = value
	}
}

// IsEmpty reports whether every field is blank.
func (r Record) IsEmpty() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// MarshalJSON writes all 18 keys in column order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, heading := range Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, heading); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, r[i]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts any subset of the headings. Unknown keys are dropped; null
// records and null values are rejected.
func (r *Record) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("invalid record: null")
	}
	var fields map[string]*string
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	*r = Record{}
	for key, value := range fields {
		if value == nil {
			return fmt.Errorf("invalid record: %q is null", key)
		}
		r.Set(key, *value)
	}
	return nil
}

// writeString encodes s without HTML escaping so umlauts and ampersands stay readable.
func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Catalog is the ordered list of records persisted in the data file.
type Catalog []Record

// MarshalJSON keeps an empty catalog as [] rather than null.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, record := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := record.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Clone returns a copy that shares no backing array with c.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}
