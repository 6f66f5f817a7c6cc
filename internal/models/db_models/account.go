package db_models

type Account struct {
	BaseModel
	Username     string `gorm:"unique"`
	FullName     string
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string
}
