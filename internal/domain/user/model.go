package user

import "time"

// Role values for staff accounts. Only admins may touch content and forms;
// staff accounts are read-only on the admin API.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id;autoIncrement" json:"user_id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	FullName  string    `gorm:"size:100" json:"full_name"`
	Email     string    `gorm:"size:200" json:"email"`
	Role      string    `gorm:"type:staff_role;default:'staff'" json:"role"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (User) TableName() string {
	return "staff_users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
