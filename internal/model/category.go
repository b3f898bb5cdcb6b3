package model

type Category struct {
	CategoryID uint   `gorm:"column:categoryid;primaryKey;autoIncrement" json:"categoryid"`
	Name       string `gorm:"column:name;type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`

	Products []Product `gorm:"foreignKey:CategoryID;references:CategoryID" json:"products,omitempty"`
}

func (Category) TableName() string {
	return "category"
}
