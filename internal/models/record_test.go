package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	require.Len(t, Columns, ColumnCount)
	assert.Equal(t, []string{
		"Milchart", "Konsistenz", "Charakteristik", "Geschmacksprofil",
		"Lochung", "Rinde", "ADR", "MICM", "STLA",
	}, ConstrainedColumns())
	assert.True(t, IsConstrained(2))
	assert.False(t, IsConstrained(0))
	assert.Equal(t, 17, ColumnIndex("Foto"))
	assert.Equal(t, -1, ColumnIndex("Preis"))
}

func TestRecordMarshalWritesAllKeysInOrder(t *testing.T) {
	var r Record
	r.Set("Name", "Brie")
	r.Set("Milchart", "Kuh")

	data, err := json.Marshal(r)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, `{"Name":"Brie","Herkunft/Region":"","Milchart":"Kuh",`), out)
	assert.True(t, strings.HasSuffix(out, `"Preis pro Kg":"","Foto":""}`), out)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Len(t, fields, ColumnCount)

	last := -1
	for _, heading := range Columns {
		idx := strings.Index(out, `"`+heading+`":`)
		require.Greater(t, idx, last, heading)
		last = idx
	}
}

func TestRecordMarshalKeepsSpecialCharacters(t *testing.T) {
	var r Record
	r.Set("Paarungsempfehlungen", "Brot & Wein <rot>")
	r.Set("Herkunft/Region", "Schweiz, Gruyère")

	data, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Brot & Wein <rot>"`)
	assert.Contains(t, string(data), `"Schweiz, Gruyère"`)
}

func TestRecordUnmarshal(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"Name":"Tilsiter","Rinde":"Schmiere","Unbekannt":"x"}`), &r))
	assert.Equal(t, "Tilsiter", r.Get("Name"))
	assert.Equal(t, "Schmiere", r.Get("Rinde"))
	assert.Equal(t, "", r.Get("Foto"))
	assert.Equal(t, "", r.Get("Unbekannt"))

	err := json.Unmarshal([]byte(`{"Name":42}`), &r)
	assert.Error(t, err)
}

func TestRecordUnmarshalRejectsNull(t *testing.T) {
	var c Catalog
	assert.Error(t, json.Unmarshal([]byte(`[null]`), &c))
	assert.Error(t, json.Unmarshal([]byte(`[{"Name":"Brie","Foto":null}]`), &c))
	require.NoError(t, json.Unmarshal([]byte(`[{"Name":"Brie"}]`), &c))
	assert.Equal(t, "Brie", c[0].Get("Name"))
}

func TestCatalogMarshal(t *testing.T) {
	var empty Catalog
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	var c Catalog
	require.NoError(t, json.Unmarshal([]byte(`[{"Name":"A"},{"Name":"B"}]`), &c))
	require.Len(t, c, 2)
	assert.Equal(t, "B", c[1].Get("Name"))

	clone := c.Clone()
	clone[0].Set("Name", "Z")
	assert.Equal(t, "A", c[0].Get("Name"))
}

func TestRecordIsEmpty(t *testing.T) {
	var r Record
	assert.True(t, r.IsEmpty())
	r.Set("Foto", " ")
	assert.True(t, r.IsEmpty())
	r.Set("Foto", "brie.jpg")
	assert.False(t, r.IsEmpty())
}

func TestOptionSet(t *testing.T) {
	source := map[string][]string{"Milchart": {"Kuh", "Ziege"}}
	opts := NewOptionSet(source)
	source["Milchart"][0] = "Schaf"

	assert.True(t, opts.Has("Milchart"))
	assert.False(t, opts.Has("Rinde"))
	assert.Equal(t, []string{"", "Kuh", "Ziege"}, opts.Choices("Milchart"))
	assert.Equal(t, []string{""}, opts.Choices("Rinde"))
	assert.True(t, opts.Allows("Milchart", "Kuh"))
	assert.True(t, opts.Allows("Milchart", ""))
	assert.False(t, opts.Allows("Milchart", "Schaf"))

	choices := opts.Choices("Milchart")
	choices[1] = "Büffel"
	assert.Equal(t, []string{"", "Kuh", "Ziege"}, opts.Choices("Milchart"))
}

func TestCSVRecordRoundTrip(t *testing.T) {
	var r Record
	for i := range r {
		r[i] = Columns[i] + "-value"
	}
	assert.Equal(t, r, r.CSV().Record())
}

func TestOptionSetConform(t *testing.T) {
	opts := NewOptionSet(map[string][]string{"Milchart": {"Kuh"}, "Rinde": {"Natur"}})

	var r Record
	r.Set("Name", "Manchego")
	r.Set("Milchart", "Schaf")
	r.Set("Rinde", "Natur")

	assert.Equal(t, 1, opts.Conform(&r))
	assert.Equal(t, "", r.Get("Milchart"))
	assert.Equal(t, "Natur", r.Get("Rinde"))
	assert.Equal(t, "Manchego", r.Get("Name"))
}
