package domain

// User is an account record. No transport endpoint exposes it today; the
// storage operations exist for the client's future account features.
// Password always holds a bcrypt hash, never the submitted secret.
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
}

func (User) TableName() string {
	return "users"
}

type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
