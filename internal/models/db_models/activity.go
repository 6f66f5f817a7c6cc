package db_models

type Activity struct {
	BaseModel
	Name        string
	Country     string `gorm:"index"`
	Location    string
	Category    string
	Description string
	PriceLabel  string
	ImageURL    string
}

func (Activity) TableName() string {
	return "tourism_entities.activities"
}
