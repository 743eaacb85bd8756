package entity

// DefaultTypeOfMoney is the currency label items carry unless the admin
// supplies another one.
const DefaultTypeOfMoney = "دینار"

// Item is the row shape shared by the per-kind item tables. Size 0 is read
// as "regular" by clients. ImageUrl is a public path under /Images/, empty
// when the item has no picture.
type Item struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Size        float64 `json:"size"`
	TypeOfMoney string  `json:"typeOfMoney"`
	ImageUrl    string  `json:"imageUrl"`
	CategoryID  uint    `gorm:"not null" json:"categoryId"`
}

// ItemWithCategory is an item joined with its category's name, the shape
// list endpoints return so clients never need a second lookup.
type ItemWithCategory struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Size         float64 `json:"size"`
	TypeOfMoney  string  `json:"typeOfMoney"`
	ImageUrl     string  `json:"imageUrl"`
	CategoryID   uint    `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
}
