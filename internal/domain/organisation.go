package domain

type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Currency struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReferenceSettings are the option lists behind the settings dropdowns.
type ReferenceSettings struct {
	Languages  []Language `json:"languages"`
	Currencies []Currency `json:"currencies"`
}

// OrganisationSettings is the general-settings form as the user sees it: labels, not ids.
type OrganisationSettings struct {
	BusinessName       string `json:"business_name" binding:"required"`
	Language           string `json:"language" binding:"required"`
	Currency           string `json:"currency" binding:"required"`
	Timezone           string `json:"timezone" binding:"required"`
	CancellationPolicy string `json:"cancellation_policy"`
	AutoDelete         string `json:"auto_delete"`
}

type UpdateOrganisationPayload struct {
	AutodeletePeriodDays   int    `json:"autodelete_period_days"`
	CancellationBufferDays int    `json:"cancellation_buffer_days"`
	CurrencyID             int64  `json:"currency_id"`
	LanguageID             int64  `json:"language_id"`
	Name                   string `json:"name"`
	Slug                   string `json:"slug"`
	Timezone               string `json:"timezone"`
}
