package models

type ActivityType struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"unique;not null;type:varchar(50)" json:"name"`
	Description string `json:"description" gorm:"type:text"`
}
