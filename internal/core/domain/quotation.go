package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalStatus is the document-level state of a quotation.
type ApprovalStatus string

const (
	StatusDraft    ApprovalStatus = "Draft"
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
	StatusRejected ApprovalStatus = "Rejected"
	StatusCanceled ApprovalStatus = "Canceled"
)

// QuotationItem is a single line item on a quotation.
// Amount is always Unit * UnitPrice after rounding.
type QuotationItem struct {
	ItemID      string          `json:"itemID"`
	Description string          `json:"description"`
	Unit        decimal.Decimal `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// Quotation is a financial proposal document routed through an approval hierarchy.
type Quotation struct {
	QuotationID   string `json:"quotationID"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Allocation    string `json:"allocation,omitempty"`
	Remark        string `json:"remark,omitempty"`
	Type          string `json:"type"`      // document type letter, e.g. "M"
	RunNumber     int    `json:"runNumber"` // sequential per type, rendered zero-padded
	CompanyCode   string `json:"companyCode"`
	ClientName    string `json:"client"`
	ClientID      string `json:"clientID"`
	SalePerson    string `json:"salePerson"`
	ProductName   string `json:"productName"`
	ProjectName   string `json:"projectName"`
	Period        string `json:"period"`
	DocumentDate  time.Time `json:"documentDate"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	CreateBy      string `json:"createBy"`
	ProposedBy    string `json:"proposedBy"`
	CreatedByUser string `json:"createdByUser"` // username of the document creator, notification target
	Department    string `json:"department"`
	Team          string `json:"team"`
	TeamGroup     string `json:"teamGroup"`
	CreditTerm    int    `json:"creditTerm"`

	Items []QuotationItem `json:"items"`

	// Money fields, all rounded to 2 decimals (half up at the 3rd decimal).
	Amount         decimal.Decimal `json:"amount"`         // sum of item amounts
	Discount       decimal.Decimal `json:"discount"`
	Fee            decimal.Decimal `json:"fee"`
	CalFee         decimal.Decimal `json:"calFee"`
	TotalBeforeFee decimal.Decimal `json:"totalBeforeFee"`
	Total          decimal.Decimal `json:"total"`          // totalBeforeFee + calFee
	AmountBeforeTax decimal.Decimal `json:"amountBeforeTax"`
	VAT            decimal.Decimal `json:"vat"`
	NetAmount      decimal.Decimal `json:"netAmount"`

	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
	ApprovalID     string         `json:"approvalID,omitempty"` // at most one active hierarchy

	CancelDate *time.Time `json:"cancelDate,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	CanceledBy string     `json:"canceledBy,omitempty"`

	AuditFields
}

// DocumentCode renders the human readable code, e.g. "OPTX(M)-2025-002".
// The company prefix comes from the creator's resolved company code attribute,
// never from re-parsing the creator's email.
func (q Quotation) DocumentCode() string {
	return FormatDocumentCode(q.CompanyCode, q.Type, q.DocumentDate.Year(), q.RunNumber)
}

// FormatDocumentCode builds the document code from its parts.
func FormatDocumentCode(companyCode, docType string, year, runNumber int) string {
	return fmt.Sprintf("%s(%s)-%d-%03d", companyCode, docType, year, runNumber)
}

// CanTransition reports whether approval transitions may be applied to the document.
func (q Quotation) CanTransition() bool {
	return q.ApprovalStatus == StatusPending
}

// CanReset reports whether the document may be unlocked back to Pending.
func (q Quotation) CanReset() bool {
	return q.ApprovalStatus == StatusCanceled || q.ApprovalStatus == StatusApproved
}
