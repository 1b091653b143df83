package mapping

import (
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	"github.com/jakkitOptx/quotation-backend-neon/internal/models"
)

// ToModelUser converts a domain user to its database model.
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:           d.UserID,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Username:         d.Username,
		PasswordHash:     d.PasswordHash,
		Level:            d.Level,
		Company:          d.Company,
		CompanyCode:      d.CompanyCode,
		Department:       d.Department,
		Position:         d.Position,
		Team:             d.Team,
		TeamGroup:        d.TeamGroup,
		TeamRole:         string(d.TeamRole),
		Role:             string(d.Role),
		ResetTokenExpiry: d.ResetTokenExpiry,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		DeletedAt:        d.DeletedAt,
	}
	if d.FlowID != "" {
		m.FlowID = &d.FlowID
	}
	if d.ResetToken != "" {
		m.ResetToken = &d.ResetToken
	}
	return m
}

// ToDomainUser converts a database user to the domain type.
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:           m.UserID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Username:         m.Username,
		PasswordHash:     m.PasswordHash,
		Level:            m.Level,
		Company:          m.Company,
		CompanyCode:      m.CompanyCode,
		Department:       m.Department,
		Position:         m.Position,
		Team:             m.Team,
		TeamGroup:        m.TeamGroup,
		TeamRole:         domain.TeamRole(m.TeamRole),
		Role:             domain.UserRole(m.Role),
		ResetTokenExpiry: m.ResetTokenExpiry,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		DeletedAt:        m.DeletedAt,
	}
	if m.FlowID != nil {
		d.FlowID = *m.FlowID
	}
	if m.ResetToken != nil {
		d.ResetToken = *m.ResetToken
	}
	return d
}

// ToDomainUserSlice converts a slice of database users.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
