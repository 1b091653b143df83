package domain

// Client is a customer a quotation is issued to.
type Client struct {
	ClientID                string `json:"clientID"`
	CustomerName            string `json:"customerName"`
	CompanyBaseName         string `json:"companyBaseName,omitempty"`
	Address                 string `json:"address,omitempty"`
	TaxIdentificationNumber string `json:"taxIdentificationNumber,omitempty"`
	ContactPhoneNumber      string `json:"contactPhoneNumber,omitempty"`
	AuditFields
}
