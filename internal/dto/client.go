package dto

// CreateClientRequest registers a customer.
type CreateClientRequest struct {
	CustomerName            string `json:"customerName" binding:"required"`
	CompanyBaseName         string `json:"companyBaseName"`
	Address                 string `json:"address"`
	TaxIdentificationNumber string `json:"taxIdentificationNumber"`
	ContactPhoneNumber      string `json:"contactPhoneNumber"`
}

// UpdateClientRequest updates a customer's attributes.
type UpdateClientRequest struct {
	CustomerName            *string `json:"customerName"`
	CompanyBaseName         *string `json:"companyBaseName"`
	Address                 *string `json:"address"`
	TaxIdentificationNumber *string `json:"taxIdentificationNumber"`
	ContactPhoneNumber      *string `json:"contactPhoneNumber"`
}
