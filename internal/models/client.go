package models

// Client is the database representation of a customer.
type Client struct {
	ClientID                string `db:"client_id"`
	CustomerName            string `db:"customer_name"`
	CompanyBaseName         string `db:"company_base_name"`
	Address                 string `db:"address"`
	TaxIdentificationNumber string `db:"tax_identification_number"`
	ContactPhoneNumber      string `db:"contact_phone_number"`
	AuditFields
}
