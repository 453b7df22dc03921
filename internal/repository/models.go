package repository

type Account struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255);not null"` // stored as-is, hashing is out of scope
}

type Message struct {
	ID          uint   `gorm:"primaryKey"`
	MessageText string `gorm:"type:varchar(255);not null"`
	PostedBy    uint   `gorm:"not null;index"` // author account id, checked at creation only
}
