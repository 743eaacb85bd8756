package entity

// Kind is the catalog axis: every category and item belongs to exactly one
// of food, drink or sweet. Categories and items of different kinds live in
// separate tables and never reference each other.
type Kind string

const (
	KindFood  Kind = "food"
	KindDrink Kind = "drink"
	KindSweet Kind = "sweet"
)

func Kinds() []Kind {
	return []Kind{KindFood, KindDrink, KindSweet}
}

// CategoryTable returns the table holding categories of this kind. Food kept
// the bare "categories" name the schema started with.
func (k Kind) CategoryTable() string {
	switch k {
	case KindDrink:
		return "drink_categories"
	case KindSweet:
		return "sweet_categories"
	default:
		return "categories"
	}
}

func (k Kind) ItemTable() string {
	switch k {
	case KindDrink:
		return "drink_items"
	case KindSweet:
		return "sweet_items"
	default:
		return "food_items"
	}
}

// CategoryMount is the URL segment of the category routes, e.g.
// /api/drinkcategory.
func (k Kind) CategoryMount() string {
	if k == KindFood {
		return "category"
	}
	return string(k) + "category"
}

// ItemMount is the URL segment of the item routes, e.g. /api/drink.
func (k Kind) ItemMount() string {
	return string(k)
}
