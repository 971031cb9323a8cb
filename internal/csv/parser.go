package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"cheesecatalog/internal/models"

	"github.com/jszwec/csvutil"
)

type Parser struct {
	filename string
}

func NewParser(filename string) *Parser {
	return &Parser{filename: filename}
}

// ParseRecords reads a CSV file whose header row uses the column headings. Headings
// missing from the file are left empty; extra columns are ignored.
func (p *Parser) ParseRecords() (models.Catalog, error) {
	file, err := os.Open(p.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

func Decode(r io.Reader) (models.Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	decoder, err := csvutil.NewDecoder(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	var rows []models.CSVRecord
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode CSV: %w", err)
	}

	catalog := make(models.Catalog, 0, len(rows))
	for _, row := range rows {
		catalog = append(catalog, row.Record())
	}
	return catalog, nil
}

// Encode writes the catalog with a header row of all column headings.
func Encode(w io.Writer, catalog models.Catalog) error {
	writer := csv.NewWriter(w)
	encoder := csvutil.NewEncoder(writer)

	if len(catalog) == 0 {
		if err := encoder.EncodeHeader(models.CSVRecord{}); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}
	for _, record := range catalog {
		if err := encoder.Encode(record.CSV()); err != nil {
			return fmt.Errorf("failed to encode CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func (p *Parser) WriteRecords(catalog models.Catalog) error {
	file, err := os.Create(p.filename)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, catalog); err != nil {
		return err
	}
	return file.Close()
}
