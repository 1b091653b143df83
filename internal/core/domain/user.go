package domain

import "time"

// UserRole controls coarse permissions.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleUser    UserRole = "user"
	RoleFinance UserRole = "finance"
)

// TeamRole is the user's position inside their team.
type TeamRole string

const (
	TeamMember    TeamRole = "member"
	TeamHead      TeamRole = "head"
	TeamGroupHead TeamRole = "groupHead"
)

// User represents an application user. Username is the login email and the
// identity string used throughout approval hierarchies and logs.
type User struct {
	UserID       string   `json:"userID"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Level        int      `json:"level"` // authorization level, must cover a step's level to act on it
	Company      string   `json:"company"`
	CompanyCode  string   `json:"companyCode"` // document code prefix, e.g. "OPTX"
	Department   string   `json:"department"`
	Position     string   `json:"position"`
	Team         string   `json:"team"`
	TeamGroup    string   `json:"teamGroup"`
	TeamRole     TeamRole `json:"teamRole"`
	Role         UserRole `json:"role"`
	FlowID       string   `json:"flowID,omitempty"` // default approval flow template

	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
