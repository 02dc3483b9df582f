package corpus

import (
	"fmt"
	"strconv"
)

// Kind discriminates the two shapes of retrievable units.
type Kind string

const (
	KindProduct  Kind = "product"
	KindDocument Kind = "document"
)

// Product holds the typed fields of one structured catalog row.
type Product struct {
	ID       string
	Name     string
	Category string
	Color    string
	Size     string
	Price    int
	Stock    int
	Rating   float64
}

// Unit is the atomic indexed object: the text body that gets embedded and
// shown as evidence, plus typed metadata discriminated by Kind.
// Product is set only for KindProduct units.
type Unit struct {
	Kind    Kind
	Source  string
	Content string
	Product *Product
}

// Metadata flattens the unit into the string map the store persists
// alongside the embedding. FromEntry reverses it.
func (u Unit) Metadata() map[string]string {
	m := map[string]string{
		"doc_type": string(u.Kind),
		"source":   u.Source,
	}
	if u.Kind == KindProduct && u.Product != nil {
		p := u.Product
		m["product_id"] = p.ID
		m["product_name"] = p.Name
		m["category"] = p.Category
		m["color"] = p.Color
		m["size"] = p.Size
		m["price"] = strconv.Itoa(p.Price)
		m["stock"] = strconv.Itoa(p.Stock)
		m["rating"] = strconv.FormatFloat(p.Rating, 'f', -1, 64)
	}
	return m
}

// FromEntry rebuilds a typed unit from a stored (content, metadata) pair.
func FromEntry(content string, meta map[string]string) (Unit, error) {
	u := Unit{
		Kind:    Kind(meta["doc_type"]),
		Source:  meta["source"],
		Content: content,
	}
	switch u.Kind {
	case KindDocument:
		return u, nil
	case KindProduct:
	default:
		return Unit{}, fmt.Errorf("unknown doc_type %q", meta["doc_type"])
	}

	price, err := strconv.Atoi(meta["price"])
	if err != nil {
		return Unit{}, fmt.Errorf("stored price %q: %w", meta["price"], err)
	}
	stock, err := strconv.Atoi(meta["stock"])
	if err != nil {
		return Unit{}, fmt.Errorf("stored stock %q: %w", meta["stock"], err)
	}
	rating, err := strconv.ParseFloat(meta["rating"], 64)
	if err != nil {
		return Unit{}, fmt.Errorf("stored rating %q: %w", meta["rating"], err)
	}
	u.Product = &Product{
		ID:       meta["product_id"],
		Name:     meta["product_name"],
		Category: meta["category"],
		Color:    meta["color"],
		Size:     meta["size"],
		Price:    price,
		Stock:    stock,
		Rating:   rating,
	}
	return u, nil
}
