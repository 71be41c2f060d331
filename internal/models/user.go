package models

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// User binds a Telegram chat to an employee name.
type User struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
	ChatID    int64  `gorm:"uniqueIndex;not null" json:"chat_id"`
	Username  string `json:"username"`
	Employee  string `gorm:"index" json:"employee"`
	Role      Role   `gorm:"type:varchar(20);not null;default:'employee'" json:"role"`
}

// IsManager reports whether the user may approve, reject and delete requests.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// DisplayName returns the employee name, falling back to the Telegram username.
func (u *User) DisplayName() string {
	if u.Employee != "" {
		return u.Employee
	}
	return u.Username
}

func (User) TableName() string {
	return "users"
}
