package entity

import "time"

type UserRole string

const (
	RoleFree  UserRole = "free"
	RolePro   UserRole = "pro"
	RoleElite UserRole = "elite"
)

type User struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	Role      UserRole  `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
