package mapping

import (
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	"github.com/jakkitOptx/quotation-backend-neon/internal/models"
)

// ToModelClient converts a domain client to its database model.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:                d.ClientID,
		CustomerName:            d.CustomerName,
		CompanyBaseName:         d.CompanyBaseName,
		Address:                 d.Address,
		TaxIdentificationNumber: d.TaxIdentificationNumber,
		ContactPhoneNumber:      d.ContactPhoneNumber,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a database client to the domain type.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:                m.ClientID,
		CustomerName:            m.CustomerName,
		CompanyBaseName:         m.CompanyBaseName,
		Address:                 m.Address,
		TaxIdentificationNumber: m.TaxIdentificationNumber,
		ContactPhoneNumber:      m.ContactPhoneNumber,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelNotification converts a domain notification to its database model.
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		Username:       d.User,
		Title:          d.Title,
		Message:        d.Message,
		Link:           d.Link,
		Type:           string(d.Type),
		IsRead:         d.IsRead,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainNotification converts a database notification to the domain type.
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		User:           m.Username,
		Title:          m.Title,
		Message:        m.Message,
		Link:           m.Link,
		Type:           domain.NotificationType(m.Type),
		IsRead:         m.IsRead,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
	}
}

// ToModelActivityLog converts a domain log entry to its database model.
func ToModelActivityLog(d domain.ActivityLog) models.ActivityLog {
	return models.ActivityLog{
		LogID:       d.LogID,
		QuotationID: d.QuotationID,
		Action:      string(d.Action),
		PerformedBy: d.PerformedBy,
		Description: d.Description,
		Timestamp:   d.Timestamp,
	}
}

// ToDomainActivityLog converts a database log entry to the domain type.
func ToDomainActivityLog(m models.ActivityLog) domain.ActivityLog {
	return domain.ActivityLog{
		LogID:       m.LogID,
		QuotationID: m.QuotationID,
		Action:      domain.LogAction(m.Action),
		PerformedBy: m.PerformedBy,
		Description: m.Description,
		Timestamp:   m.Timestamp,
	}
}
