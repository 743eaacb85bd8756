package entity

// Category is the row shape shared by all three per-kind category tables.
// The table is always picked explicitly by the repository, so there is no
// TableName here.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}
