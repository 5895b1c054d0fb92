package model

type Judge struct {
	Model
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}
