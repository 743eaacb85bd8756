package client

import (
	"strconv"
	"strings"
)

// defaultTypeOfMoney mirrors the server-side currency default.
const defaultTypeOfMoney = "دینار"

// Item is the canonical client-side item shape. Backends have served these
// fields in several casings over time, so raw payloads go through
// NormalizeItem instead of strict decoding.
type Item struct {
	ID           uint
	Name         string
	CategoryID   uint
	CategoryName string
	ImageURL     string
	Price        float64
	Size         float64
	TypeOfMoney  string
}

type Category struct {
	ID   uint
	Name string
}

func pickString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func pickNumber(raw map[string]any, keys ...string) float64 {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// NormalizeItem folds whatever field casing the server used into the
// canonical Item shape.
func NormalizeItem(raw map[string]any) Item {
	return Item{
		ID:           uint(pickNumber(raw, "Id", "id", "ID")),
		Name:         pickString(raw, "Name", "name"),
		CategoryID:   uint(pickNumber(raw, "CategoryId", "categoryId")),
		CategoryName: strings.TrimSpace(pickString(raw, "Category", "category", "categoryName", "CategoryName")),
		ImageURL:     pickString(raw, "ImageUrl", "imageUrl", "image"),
		Price:        pickNumber(raw, "Price", "price"),
		Size:         pickNumber(raw, "Size", "size"),
		TypeOfMoney:  firstNonEmpty(pickString(raw, "TypeOfMoney", "typeOfMoney", "type_of_money"), defaultTypeOfMoney),
	}
}

func NormalizeCategory(raw map[string]any) Category {
	return Category{
		ID:   uint(pickNumber(raw, "Id", "id", "ID")),
		Name: strings.TrimSpace(pickString(raw, "Name", "name")),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
