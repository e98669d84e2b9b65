package models

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is a credential record. Exactly one of Username/StudentID is set,
// matching the role: admins log in with a username, students with their
// student ID.
type User struct {
	ID           int64   `json:"id" db:"id"`
	Username     *string `json:"username" db:"username"`
	StudentID    *string `json:"student_id" db:"student_id"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Role         string  `json:"role" db:"role"`
}

// Identifier returns the login identifier for the user's role.
func (u *User) Identifier() string {
	if u.Role == RoleStudent && u.StudentID != nil {
		return *u.StudentID
	}
	if u.Username != nil {
		return *u.Username
	}
	return ""
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	User    SessionUser `json:"user"`
}

type CheckSessionResponse struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *SessionUser `json:"user,omitempty"`
}

type CreateStudentRequest struct {
	StudentID string `json:"student_id"`
	Password  string `json:"password"`
}

type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountList partitions every account by role.
type AccountList struct {
	Students []*User `json:"students"`
	Admins   []*User `json:"admins"`
}
