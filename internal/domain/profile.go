package domain

type Service struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Location struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	DefaultForAuthUser bool    `json:"default_for_auth_user"`
	Address            string  `json:"address"`
	City               string  `json:"city"`
	State              string  `json:"state"`
	PostCode           string  `json:"post_code"`
	Country            Country `json:"country"`
	PhoneNumber        string  `json:"phone_number"`
	VATNumber          string  `json:"vat_number"`
	Website            string  `json:"website"`
	FromTime           string  `json:"from_time"`
	ToTime             string  `json:"to_time"`
}

type Organisation struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	Slug                   string `json:"slug"`
	LanguageID             int64  `json:"language_id"`
	CurrencyID             int64  `json:"currency_id"`
	Timezone               string `json:"timezone"`
	CancellationBufferDays int    `json:"cancellation_buffer_days"`
	AutodeletePeriodDays   int    `json:"autodelete_period_days"`
}

type UserProfile struct {
	ID                    int64          `json:"id"`
	FullName              string         `json:"full_name"`
	Email                 string         `json:"email"`
	DefaultOrganisationID int64          `json:"default_organisation_id"`
	Services              []Service      `json:"services"`
	Organisations         []Organisation `json:"organisations"`
}

// DefaultOrganisation returns the organisation the profile points at, or nil.
func (p *UserProfile) DefaultOrganisation() *Organisation {
	for i := range p.Organisations {
		if p.Organisations[i].ID == p.DefaultOrganisationID {
			return &p.Organisations[i]
		}
	}
	return nil
}

type Customer struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type Project struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Signed bool   `json:"signed"`
}
