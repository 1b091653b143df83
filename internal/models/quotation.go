package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation is the database representation of a quotation document.
type Quotation struct {
	QuotationID   string    `db:"quotation_id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Allocation    string    `db:"allocation"`
	Remark        string    `db:"remark"`
	Type          string    `db:"type"`
	RunNumber     int       `db:"run_number"`
	CompanyCode   string    `db:"company_code"`
	ClientName    string    `db:"client_name"`
	ClientID      string    `db:"client_id"`
	SalePerson    string    `db:"sale_person"`
	ProductName   string    `db:"product_name"`
	ProjectName   string    `db:"project_name"`
	Period        string    `db:"period"`
	DocumentDate  time.Time `db:"document_date"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	CreateBy      string    `db:"create_by"`
	ProposedBy    string    `db:"proposed_by"`
	CreatedByUser string    `db:"created_by_user"`
	Department    string    `db:"department"`
	Team          string    `db:"team"`
	TeamGroup     string    `db:"team_group"`
	CreditTerm    int       `db:"credit_term"`

	Amount          decimal.Decimal `db:"amount"`
	Discount        decimal.Decimal `db:"discount"`
	Fee             decimal.Decimal `db:"fee"`
	CalFee          decimal.Decimal `db:"cal_fee"`
	TotalBeforeFee  decimal.Decimal `db:"total_before_fee"`
	Total           decimal.Decimal `db:"total"`
	AmountBeforeTax decimal.Decimal `db:"amount_before_tax"`
	VAT             decimal.Decimal `db:"vat"`
	NetAmount       decimal.Decimal `db:"net_amount"`

	ApprovalStatus string  `db:"approval_status"`
	ApprovalID     *string `db:"approval_id"`

	CancelDate *time.Time `db:"cancel_date"`
	Reason     *string    `db:"reason"`
	CanceledBy *string    `db:"canceled_by"`

	AuditFields
}

// QuotationItem is a line item row belonging to a quotation.
type QuotationItem struct {
	ItemID      string          `db:"item_id"`
	QuotationID string          `db:"quotation_id"`
	Position    int             `db:"position"`
	Description string          `db:"description"`
	Unit        decimal.Decimal `db:"unit"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Amount      decimal.Decimal `db:"amount"`
}
