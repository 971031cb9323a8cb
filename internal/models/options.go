package models

// OptionSet holds the allowed values for every constrained column. It is built once
// and never mutated afterwards.
type OptionSet struct {
	values map[string][]string
}

func NewOptionSet(values map[string][]string) *OptionSet {
	copied := make(map[string][]string, len(values))
	for heading, list := range values {
		copied[heading] = append([]string(nil), list...)
	}
	return &OptionSet{values: copied}
}

// Has reports whether heading has a vocabulary.
func (o *OptionSet) Has(heading string) bool {
	_, ok := o.values[heading]
	return ok
}

// Choices returns the dropdown entries for heading: the empty selection followed by
// the allowed values.
func (o *OptionSet) Choices(heading string) []string {
	list := o.values[heading]
	choices := make([]string, 0, len(list)+1)
	choices = append(choices, "")
	return append(choices, list...)
}

// Allows reports whether value may be shown in the dropdown for heading.
func (o *OptionSet) Allows(heading, value string) bool {
	if value == "" {
		return true
	}
	for _, v := range o.values[heading] {
		if v == value {
			return true
		}
	}
	return false
}

// Conform clears every constrained field of r whose value is outside the vocabulary
// and returns how many were cleared.
func (o *OptionSet) Conform(r *Record) int {
	cleared := 0
	for col, heading := range Columns {
		if IsConstrained(col) && !o.Allows(heading, r[col]) {
			r[col] = ""
			cleared++
		}
	}
	return cleared
}
