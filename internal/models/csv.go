package models

// CSVRecord is the flat CSV shape of a Record. Header names are the column headings.
type CSVRecord struct {
	Name                 string `csv:"Name"`
	Region               string `csv:"Herkunft/Region"`
	Milchart             string `csv:"Milchart"`
	Konsistenz           string `csv:"Konsistenz"`
	Charakteristik       string `csv:"Charakteristik"`
	Fettgehalt           string `csv:"Fettgehalt"`
	Reifezeit            string `csv:"Reifezeit"`
	Jahrgang             string `csv:"Jahrgang"`
	Geschmacksprofil     string `csv:"Geschmacksprofil"`
	Lochung              string `csv:"Lochung"`
	Rinde                string `csv:"Rinde"`
	BesondereMerkmale    string `csv:"Besondere Merkmale"`
	Paarungsempfehlungen string `csv:"Paarungsempfehlungen"`
	ADR                  string `csv:"ADR"`
	MICM                 string `csv:"MICM"`
	STLA                 string `csv:"STLA"`
	PreisProKg           string `csv:"Preis pro Kg"`
	Foto                 string `csv:"Foto"`
}

// Record converts the CSV row into column order.
func (c CSVRecord) Record() Record {
	return Record{
		c.Name, c.Region, c.Milchart, c.Konsistenz, c.Charakteristik, c.Fettgehalt,
		c.Reifezeit, c.Jahrgang, c.Geschmacksprofil, c.Lochung, c.Rinde,
		c.BesondereMerkmale, c.Paarungsempfehlungen, c.ADR, c.MICM, c.STLA,
		c.PreisProKg, c.Foto,
	}
}

// CSV converts r into its CSV row.
func (r Record) CSV() CSVRecord {
	return CSVRecord{
		Name:                 r[0],
		Region:               r[1],
		Milchart:             r[2],
		Konsistenz:           r[3],
		Charakteristik:       r[4],
		Fettgehalt:           r[5],
		Reifezeit:            r[6],
		Jahrgang:             r[7],
		Geschmacksprofil:     r[8],
		Lochung:              r[9],
		Rinde:                r[10],
		BesondereMerkmale:    r[11],
		Paarungsempfehlungen: r[12],
		ADR:                  r[13],
		MICM:                 r[14],
		STLA:                 r[15],
		PreisProKg:           r[16],
		Foto:                 r[17],
	}
}
