package domain

import (
	"time"
)

// AppointmentDraft is the unsaved, in-progress form data of the wizard.
type AppointmentDraft struct {
	LocationName        string     `json:"location_name"`
	ArtistName          string     `json:"artist_name"`
	ServiceName         string     `json:"service_name"`
	DurationLabel       string     `json:"duration_label"`
	Price               string     `json:"price"`
	DateTime            *time.Time `json:"date_time"`
	Notes               string     `json:"notes"`
	IsPartOfProject     bool       `json:"is_part_of_project"`
	Client              *Customer  `json:"client"`
	SelectedProjectName string     `json:"selected_project_name"`
	PaidBy              string     `json:"paid_by"`
	DepositAmount       string     `json:"deposit_amount"`
}

// DraftPatch carries the fields a client changed. Nil means untouched.
type DraftPatch struct {
	LocationName        *string    `json:"location_name"`
	ArtistName          *string    `json:"artist_name"`
	ServiceName         *string    `json:"service_name"`
	DurationLabel       *string    `json:"duration_label"`
	Price               *string    `json:"price"`
	DateTime            *time.Time `json:"date_time"`
	Notes               *string    `json:"notes"`
	IsPartOfProject     *bool      `json:"is_part_of_project"`
	ClientID            *int64     `json:"client_id"`
	SelectedProjectName *string    `json:"selected_project_name"`
	PaidBy              *string    `json:"paid_by"`
	DepositAmount       *string    `json:"deposit_amount"`
}

// AppointmentPayload is the body of POST /appointments on the studio API.
type AppointmentPayload struct {
	StaffID    int64   `json:"staff_id"`
	ProjectID  int64   `json:"project_id"`
	ServiceID  int64   `json:"service_id"`
	CustomerID int64   `json:"customer_id"`
	LocationID int64   `json:"location_id"`
	StartTime  string  `json:"start_time"`
	Date       string  `json:"date"`
	Duration   int     `json:"duration"`
	Price      string  `json:"price"`
	Note       string  `json:"note"`
	Status     *string `json:"status"`
	PaidBy     string  `json:"paid_by"`
	Deposit    string  `json:"deposit"`
}

type CreatedAppointment struct {
	ID int64 `json:"id"`
}

// ConsentDocumentPayload is the body of POST /projects/save-document.
type ConsentDocumentPayload struct {
	ConsentFormID int64  `json:"consent_form_id"`
	CustomerID    int64  `json:"customer_id"`
	ProjectID     int64  `json:"project_id"`
	Signature     string `json:"signature"`
}

type ConsentDocument struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	CustomerID int64     `json:"customer_id"`
	ProjectID  int64     `json:"project_id"`
	ObjectURL  string    `json:"object_url"`
	SignedAt   time.Time `json:"signed_at"`
}

type SignatureRequest struct {
	Signature string `json:"signature" binding:"required"`
}
