package models

type ChatSession struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Title     string `gorm:"column:title;type:text;not null"`
	CreatedAt int64  `gorm:"column:created_at;not null;index:idx_chat_sessions_created"`
}

func (ChatSession) TableName() string { return "chat_sessions" }

type ChatMessage struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID int64  `gorm:"column:session_id;not null;index:idx_messages_session"`
	Role      string `gorm:"column:role;type:text;not null"`
	Content   string `gorm:"column:content;type:text;not null"`
	CreatedAt int64  `gorm:"column:timestamp;not null"`
}

func (ChatMessage) TableName() string { return "messages" }
