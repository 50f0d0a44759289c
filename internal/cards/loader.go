package cards

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadItemsFile reads items from a .csv or .json file.
func LoadItemsFile(path string) ([]Item, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var items []Item
		if err := json.NewDecoder(fp).Decode(&items); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return items, nil
	case ".csv":
		items, err := LoadItemsCSV(fp)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unsupported item file %s", path)
	}
}

// LoadItemsCSV reads items from CSV. The header row names columns with the
// same keys as the JSON payload (cardname, buy_price, ...); missing columns
// are left empty.
func LoadItemsCSV(r io.Reader) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv has no header")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := make([]Item, 0, len(rows)-1)
	for n, row := range rows[1:] {
		it := Item{
			ID:               ID(get(row, "id")),
			Name:             get(row, "cardname"),
			Rarity:           get(row, "rarity"),
			Genre:            get(row, "cardgenre"),
			Expansion:        get(row, "expansion"),
			Number:           get(row, "cardnumber"),
			ImageURL:         get(row, "full_image_url"),
			SpecialCondition: get(row, "special_condition"),
			Type:             get(row, "type"),
		}
		if s := strings.ReplaceAll(get(row, "buy_price"), ",", ""); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: buy_price %q: %w", n+2, s, err)
			}
			it.Price = v
		}
		switch strings.ToLower(get(row, "any_model_number")) {
		case "true", "1", "yes":
			it.AnyNumber = true
		}
		out = append(out, it)
	}
	return out, nil
}
