package models

import "time"

// User is the database representation of an application user.
type User struct {
	UserID       string `db:"user_id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Level        int    `db:"level"`
	Company      string `db:"company"`
	CompanyCode  string `db:"company_code"`
	Department   string `db:"department"`
	Position     string `db:"position"`
	Team         string `db:"team"`
	TeamGroup    string `db:"team_group"`
	TeamRole     string `db:"team_role"`
	Role         string `db:"role"`
	FlowID       *string `db:"flow_id"`

	ResetToken       *string    `db:"reset_token"`
	ResetTokenExpiry *time.Time `db:"reset_token_expiry"`

	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
