package mapping

import (
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	"github.com/jakkitOptx/quotation-backend-neon/internal/models"
)

// ToModelQuotation converts a domain quotation to its database model.
// Items are mapped separately because they live in their own table.
func ToModelQuotation(d domain.Quotation) models.Quotation {
	m := models.Quotation{
		QuotationID:     d.QuotationID,
		Title:           d.Title,
		Description:     d.Description,
		Allocation:      d.Allocation,
		Remark:          d.Remark,
		Type:            d.Type,
		RunNumber:       d.RunNumber,
		CompanyCode:     d.CompanyCode,
		ClientName:      d.ClientName,
		ClientID:        d.ClientID,
		SalePerson:      d.SalePerson,
		ProductName:     d.ProductName,
		ProjectName:     d.ProjectName,
		Period:          d.Period,
		DocumentDate:    d.DocumentDate,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		CreateBy:        d.CreateBy,
		ProposedBy:      d.ProposedBy,
		CreatedByUser:   d.CreatedByUser,
		Department:      d.Department,
		Team:            d.Team,
		TeamGroup:       d.TeamGroup,
		CreditTerm:      d.CreditTerm,
		Amount:          d.Amount,
		Discount:        d.Discount,
		Fee:             d.Fee,
		CalFee:          d.CalFee,
		TotalBeforeFee:  d.TotalBeforeFee,
		Total:           d.Total,
		AmountBeforeTax: d.AmountBeforeTax,
		VAT:             d.VAT,
		NetAmount:       d.NetAmount,
		ApprovalStatus:  string(d.ApprovalStatus),
		CancelDate:      d.CancelDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	// Absent optional values are stored as NULL; the columns carry no
	// NOT NULL constraint.
	if d.ApprovalID != "" {
		m.ApprovalID = &d.ApprovalID
	}
	if d.Reason != "" {
		m.Reason = &d.Reason
	}
	if d.CanceledBy != "" {
		m.CanceledBy = &d.CanceledBy
	}
	return m
}

// ToDomainQuotation converts a database quotation and its item rows to the domain type.
func ToDomainQuotation(m models.Quotation, items []models.QuotationItem) domain.Quotation {
	d := domain.Quotation{
		QuotationID:     m.QuotationID,
		Title:           m.Title,
		Description:     m.Description,
		Allocation:      m.Allocation,
		Remark:          m.Remark,
		Type:            m.Type,
		RunNumber:       m.RunNumber,
		CompanyCode:     m.CompanyCode,
		ClientName:      m.ClientName,
		ClientID:        m.ClientID,
		SalePerson:      m.SalePerson,
		ProductName:     m.ProductName,
		ProjectName:     m.ProjectName,
		Period:          m.Period,
		DocumentDate:    m.DocumentDate,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		CreateBy:        m.CreateBy,
		ProposedBy:      m.ProposedBy,
		CreatedByUser:   m.CreatedByUser,
		Department:      m.Department,
		Team:            m.Team,
		TeamGroup:       m.TeamGroup,
		CreditTerm:      m.CreditTerm,
		Amount:          m.Amount,
		Discount:        m.Discount,
		Fee:             m.Fee,
		CalFee:          m.CalFee,
		TotalBeforeFee:  m.TotalBeforeFee,
		Total:           m.Total,
		AmountBeforeTax: m.AmountBeforeTax,
		VAT:             m.VAT,
		NetAmount:       m.NetAmount,
		ApprovalStatus:  domain.ApprovalStatus(m.ApprovalStatus),
		CancelDate:      m.CancelDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.ApprovalID != nil {
		d.ApprovalID = *m.ApprovalID
	}
	if m.Reason != nil {
		d.Reason = *m.Reason
	}
	if m.CanceledBy != nil {
		d.CanceledBy = *m.CanceledBy
	}
	d.Items = make([]domain.QuotationItem, len(items))
	for i, it := range items {
		d.Items[i] = domain.QuotationItem{
			ItemID:      it.ItemID,
			Description: it.Description,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		}
	}
	return d
}

// ToModelQuotationItems converts domain line items to database rows, keeping order.
func ToModelQuotationItems(quotationID string, items []domain.QuotationItem) []models.QuotationItem {
	rows := make([]models.QuotationItem, len(items))
	for i, it := range items {
		rows[i] = models.QuotationItem{
			ItemID:      it.ItemID,
			QuotationID: quotationID,
			Position:    i,
			Description: it.Description,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		}
	}
	return rows
}
