package dto

type UpdateSettingsRequest struct {
	CompanyName    *string `json:"company_name"    validate:"omitempty,min=1,max=200"`
	CompanyAddress *string `json:"company_address"`
	// CompanyLogo is a base64 data URI; the service enforces the size limit.
	CompanyLogo *string `json:"company_logo"`
}

type SettingsResponse struct {
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyLogo    string `json:"company_logo"`
}

// TagsResponse lists the closed enumerations the UI renders as pickers.
type TagsResponse struct {
	Categories     []string `json:"categories"`
	Sizes          []string `json:"sizes"`
	Colors         []string `json:"colors"`
	PaymentMethods []string `json:"payment_methods"`
	LoyaltyTiers   []string `json:"loyalty_tiers"`
}
