package models

// Entry is one logged date. Tags are kept as a single ", "-joined text
// column to stay compatible with the original on-disk shape; the catalog of
// available tags lives in CustomTag and is not referentially tied to this.
type Entry struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Date        string `gorm:"column:date;type:text;not null;index:idx_entries_date"`
	PartnerName string `gorm:"column:partner_name;type:text;not null"`
	SocialMedia string `gorm:"column:social_media;type:text;not null;default:''"`
	Notes       string `gorm:"column:notes;type:text;not null;default:''"`
	Tags        string `gorm:"column:tags;type:text;not null;default:''"`
	CreatedAt   int64  `gorm:"column:created_at;not null"`
}

func (Entry) TableName() string { return "entries" }

type Media struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	EntryID  int64  `gorm:"column:entry_id;not null;index:idx_media_entry"`
	FilePath string `gorm:"column:file_path;type:text;not null"`
	Kind     string `gorm:"column:media_type;type:text;not null"`
}

func (Media) TableName() string { return "media" }
