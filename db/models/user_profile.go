package models

// UserProfile is a singleton row: ID is always ProfileRowID.
type UserProfile struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	Name      string `gorm:"column:name;type:text;not null;default:''"`
	Age       int    `gorm:"column:age;not null;default:0"`
	Gender    string `gorm:"column:gender;type:text;not null;default:''"`
	Goals     string `gorm:"column:dating_goals;type:text;not null;default:''"`
	Interests string `gorm:"column:interests;type:text;not null;default:''"`
}

func (UserProfile) TableName() string { return "user_profile" }

const ProfileRowID int64 = 1
