package models

type CustomTag struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Label string `gorm:"column:tag_name;type:text;not null;uniqueIndex:uniq_custom_tags_name"`
}

func (CustomTag) TableName() string { return "custom_tags" }
