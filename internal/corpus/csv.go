package corpus

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var productColumns = []string{
	"MaSanPham", "TenSanPham", "DanhMuc", "MauSac",
	"KichThuoc", "GiaTien", "MoTa", "TonKho", "DanhGia",
}

// LoadProducts parses a tabular catalog file into product units, one per
// row that fully parses. Malformed rows are logged and dropped; they never
// abort the file.
func LoadProducts(path string) ([]Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv file")
	}

	cols, err := columnIndex(records[0])
	if err != nil {
		return nil, err
	}

	source := filepath.Base(path)
	var units []Unit
	for i, rec := range records[1:] {
		u, err := parseProductRow(rec, cols, source)
		if err != nil {
			log.Printf("skipping row %d of %s: %v", i+2, source, err)
			continue
		}
		units = append(units, u)
	}
	return units, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	for _, name := range productColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}

func parseProductRow(rec []string, cols map[string]int, source string) (Unit, error) {
	field := func(name string) (string, error) {
		idx := cols[name]
		if idx >= len(rec) {
			return "", fmt.Errorf("row too short, no %s field", name)
		}
		return strings.TrimSpace(rec[idx]), nil
	}

	p := &Product{}
	var rawPrice, rawStock, rawRating, description string
	for name, dst := range map[string]*string{
		"MaSanPham": &p.ID,
		"TenSanPham": &p.Name,
		"DanhMuc":   &p.Category,
		"MauSac":    &p.Color,
		"KichThuoc": &p.Size,
		"GiaTien":   &rawPrice,
		"MoTa":      &description,
		"TonKho":    &rawStock,
		"DanhGia":   &rawRating,
	} {
		v, err := field(name)
		if err != nil {
			return Unit{}, err
		}
		*dst = v
	}

	p.Category = strings.ToLower(p.Category)
	p.Color = strings.ToLower(p.Color)
	p.Size = strings.ToUpper(p.Size)

	digits := digitsOnly(rawPrice)
	if digits == "" {
		return Unit{}, fmt.Errorf("price %q has no digits", rawPrice)
	}
	price, err := strconv.Atoi(digits)
	if err != nil {
		return Unit{}, fmt.Errorf("price %q: %w", rawPrice, err)
	}
	p.Price = price

	p.Stock, err = strconv.Atoi(rawStock)
	if err != nil {
		return Unit{}, fmt.Errorf("stock %q: %w", rawStock, err)
	}
	if p.Stock < 0 {
		return Unit{}, fmt.Errorf("negative stock %d", p.Stock)
	}

	p.Rating, err = strconv.ParseFloat(rawRating, 64)
	if err != nil {
		return Unit{}, fmt.Errorf("rating %q: %w", rawRating, err)
	}

	content := fmt.Sprintf(
		"Sản phẩm: %s\n"+
			"Mã sản phẩm: %s\n"+
			"Danh mục: %s\n"+
			"Màu sắc: %s\n"+
			"Kích thước: %s\n"+
			"Giá bán: %d VNĐ\n"+
			"Tồn kho: %d\n"+
			"Đánh giá: %s/5\n"+
			"Mô tả: %s",
		p.Name, p.ID, p.Category, p.Color, p.Size, p.Price, p.Stock,
		strconv.FormatFloat(p.Rating, 'f', -1, 64), description,
	)

	return Unit{Kind: KindProduct, Source: source, Content: content, Product: p}, nil
}

// digitsOnly keeps the ASCII digits of a raw price field, dropping
// currency symbols and grouping separators ("1.200.000đ" -> "1200000").
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
