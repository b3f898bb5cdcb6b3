package model

import "github.com/shopspring/decimal"

type Product struct {
	ItemID      uint            `gorm:"column:itemid;primaryKey;autoIncrement" json:"itemid"`
	Name        string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description *string         `gorm:"column:description;type:text" json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	StockLevel  int             `gorm:"column:stocklevel;not null" json:"stocklevel"`
	IsActive    bool            `gorm:"column:isactive;not null" json:"isactive"`
	CategoryID  *uint           `gorm:"column:categoryid" json:"categoryid"`

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

func (Product) TableName() string {
	return "product"
}
