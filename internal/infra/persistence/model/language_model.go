package model

// LanguageModel mirrors the 'languages' table of marketplace locales.
type LanguageModel struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	Locale  string `gorm:"type:varchar(8);unique;not null"`
	Default bool   `gorm:"column:is_default;not null;default:false"`
	Active  bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (LanguageModel) TableName() string {
	return "languages"
}
