package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

// QuotationItemRequest is one line item in a create/update request.
type QuotationItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Unit        decimal.Decimal `json:"unit" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateQuotationRequest carries everything needed to create a quotation.
// Totals are always recomputed server side; clients never submit amounts.
type CreateQuotationRequest struct {
	Title        string                 `json:"title" binding:"required"`
	Description  string                 `json:"description"`
	Allocation   string                 `json:"allocation"`
	Remark       string                 `json:"remark"`
	Type         string                 `json:"type" binding:"required,doctype"`
	ClientName   string                 `json:"client" binding:"required"`
	ClientID     string                 `json:"clientId" binding:"required"`
	SalePerson   string                 `json:"salePerson" binding:"required"`
	ProductName  string                 `json:"productName" binding:"required"`
	ProjectName  string                 `json:"projectName" binding:"required"`
	Period       string                 `json:"period" binding:"required"`
	DocumentDate time.Time              `json:"documentDate" binding:"required"`
	StartDate    time.Time              `json:"startDate" binding:"required"`
	EndDate      time.Time              `json:"endDate" binding:"required"`
	CreateBy     string                 `json:"createBy" binding:"required"`
	ProposedBy   string                 `json:"proposedBy" binding:"required"`
	Items        []QuotationItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount     decimal.Decimal        `json:"discount"`
	Fee          decimal.Decimal        `json:"fee"`
	CreditTerm   int                    `json:"creditTerm"`

	// SaveAsDraft creates the document in Draft instead of Pending.
	SaveAsDraft bool `json:"saveAsDraft"`

	// FlowID optionally overrides the creator's default approval flow.
	FlowID string `json:"flowId"`
}

// UpdateQuotationRequest carries an edit of an existing quotation.
type UpdateQuotationRequest struct {
	Title        string                 `json:"title" binding:"required"`
	Description  string                 `json:"description"`
	Allocation   string                 `json:"allocation"`
	Remark       string                 `json:"remark"`
	Type         string                 `json:"type" binding:"required,doctype"`
	ClientName   string                 `json:"client" binding:"required"`
	ClientID     string                 `json:"clientId" binding:"required"`
	SalePerson   string                 `json:"salePerson" binding:"required"`
	ProductName  string                 `json:"productName" binding:"required"`
	ProjectName  string                 `json:"projectName" binding:"required"`
	Period       string                 `json:"period" binding:"required"`
	DocumentDate time.Time              `json:"documentDate" binding:"required"`
	StartDate    time.Time              `json:"startDate" binding:"required"`
	EndDate      time.Time              `json:"endDate" binding:"required"`
	CreateBy     string                 `json:"createBy" binding:"required"`
	ProposedBy   string                 `json:"proposedBy" binding:"required"`
	Items        []QuotationItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount     decimal.Decimal        `json:"discount"`
	Fee          decimal.Decimal        `json:"fee"`
	CreditTerm   int                    `json:"creditTerm"`
}

// UpdateReasonRequest sets the cancellation/edit reason on a quotation.
type UpdateReasonRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// QuotationListResponse is a page of quotations with pagination metadata.
type QuotationListResponse struct {
	Data        []domain.Quotation `json:"data"`
	Total       int64              `json:"total"`
	CurrentPage int                `json:"currentPage"`
	TotalPages  int                `json:"totalPages"`
}
