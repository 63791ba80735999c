package server

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// MenuItem is one row of an uploaded menu CSV.
type MenuItem struct {
	Name        string
	Category    string
	Description string
	Price       string
	ImageURL    string
}

// EmitFunc receives one progress line. Returning an error aborts the
// ingest; the only caller returns write errors, so an error here means
// the client went away.
type EmitFunc func(line string) error

// Column headers the ingest recognizes, matching the menu scraper's
// CSV output.
const (
	colName        = "Name"
	colCategory    = "Category"
	colDescription = "Description"
	colPrice       = "Price (USD)"
	colImageURL    = "Image URL"
)

// IngestCSV reads a menu CSV and streams ingest progress through emit,
// one line per unit of work. Rows are grouped by category, preserving
// the order in which categories first appear. Bad rows produce a ❌
// line and are skipped; only an unusable header or a write failure
// aborts the ingest.
func IngestCSV(r io.Reader, brand, location string, emit EmitFunc) error {
	if err := emit(fmt.Sprintf("📦 Menu upload for %s — %s\n", brand, location)); err != nil {
		return err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		_ = emit("❌ Could not read CSV header\n")
		return fmt.Errorf("read csv header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		_ = emit(fmt.Sprintf("❌ %s\n", err))
		return err
	}

	var (
		order      []string
		byCategory = make(map[string][]MenuItem)
		rowNum     int
	)

	for {
		rowNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if emitErr := emit(fmt.Sprintf("❌ Row %d: %s\n", rowNum, err)); emitErr != nil {
				return emitErr
			}
			continue
		}

		if err := emit(fmt.Sprintf("Parsing row %d\n", rowNum)); err != nil {
			return err
		}

		item, err := cols.item(record)
		if err != nil {
			if emitErr := emit(fmt.Sprintf("❌ Row %d: %s\n", rowNum, err)); emitErr != nil {
				return emitErr
			}
			continue
		}

		if _, seen := byCategory[item.Category]; !seen {
			order = append(order, item.Category)
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	for _, category := range order {
		if err := emit(fmt.Sprintf("📁 Adding category: %s\n", category)); err != nil {
			return err
		}
		for _, item := range byCategory[category] {
			if err := emit(fmt.Sprintf("  ➕ Adding item: %s\n", item.Name)); err != nil {
				return err
			}
		}
	}

	return emit("✅ Done uploading all items!\n")
}

// columnMap holds the index of each recognized column, -1 when absent.
type columnMap struct {
	name        int
	category    int
	description int
	price       int
	imageURL    int
}

func mapColumns(header []string) (*columnMap, error) {
	cols := &columnMap{name: -1, category: -1, description: -1, price: -1, imageURL: -1}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case colName:
			cols.name = i
		case colCategory:
			cols.category = i
		case colDescription:
			cols.description = i
		case colPrice:
			cols.price = i
		case colImageURL:
			cols.imageURL = i
		}
	}
	if cols.name == -1 || cols.category == -1 {
		return nil, fmt.Errorf("CSV missing required columns %q and %q", colName, colCategory)
	}
	return cols, nil
}

func (c *columnMap) item(record []string) (MenuItem, error) {
	field := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	item := MenuItem{
		Name:        field(c.name),
		Category:    field(c.category),
		Description: field(c.description),
		Price:       field(c.price),
		ImageURL:    field(c.imageURL),
	}
	if item.Name == "" {
		return MenuItem{}, fmt.Errorf("missing item name")
	}
	if item.Category == "" {
		item.Category = "Uncategorized"
	}
	return item, nil
}
