package db_models

type InterestTag struct {
	BaseModel
	Name string `gorm:"unique"`
	Icon string
}

func (InterestTag) TableName() string {
	return "tourism_features.interest_tags"
}
