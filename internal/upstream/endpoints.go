package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"inkdesk/internal/domain"
)

var ErrNoAccessToken = errors.New("login response carried no access token")

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	if err := c.doJSON(ctx, "login", "", http.MethodPost, "/login", req, &resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.AccessToken == "" {
		return "", ErrNoAccessToken
	}
	return resp.AccessToken, nil
}

func (c *Client) GetProfile(ctx context.Context, apiKey string) (*domain.UserProfile, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "me", apiKey, http.MethodGet, "/me", nil, &raw); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	profile, err := unwrap[domain.UserProfile](raw)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

func (c *Client) ListCustomers(ctx context.Context, apiKey, search string) ([]domain.Customer, error) {
	q := url.Values{}
	q.Set("search", search)
	var raw json.RawMessage
	if err := c.doJSON(ctx, "customers", apiKey, http.MethodGet, "/customers?"+q.Encode(), nil, &raw); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	customers, err := unwrap[[]domain.Customer](raw)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (c *Client) ListProjects(ctx context.Context, apiKey string, customerID int64) ([]domain.Project, error) {
	path := "/projects?customer_id=" + strconv.FormatInt(customerID, 10)
	var raw json.RawMessage
	if err := c.doJSON(ctx, "projects", apiKey, http.MethodGet, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projects, err := unwrap[[]domain.Project](raw)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (c *Client) SaveConsentDocument(ctx context.Context, apiKey string, payload domain.ConsentDocumentPayload) error {
	if err := c.doJSON(ctx, "save_document", apiKey, http.MethodPost, "/projects/save-document", payload, nil); err != nil {
		return fmt.Errorf("save consent document: %w", err)
	}
	return nil
}

func (c *Client) CreateAppointment(ctx context.Context, apiKey string, payload domain.AppointmentPayload) (*domain.CreatedAppointment, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "create_appointment", apiKey, http.MethodPost, "/appointments", payload, &raw); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	created, err := unwrap[domain.CreatedAppointment](raw)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &created, nil
}

func (c *Client) ListAppointments(ctx context.Context, apiKey string, f domain.AppointmentFilter) ([]domain.CalendarAppointment, error) {
	q := url.Values{}
	q.Set("from", f.From)
	q.Set("to", f.To)
	q.Set("duration", f.Duration)
	q.Set("status", f.Status)
	q.Set("customer_id", f.CustomerID)
	q.Set("service_id", f.ServiceID)
	q.Set("location_id", f.LocationID)
	for _, id := range f.StaffIDs {
		q.Add("staff_ids[]", strconv.FormatInt(id, 10))
	}

	var raw json.RawMessage
	if err := c.doJSON(ctx, "appointments", apiKey, http.MethodGet, "/appointments?"+q.Encode(), nil, &raw); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	appointments, err := unwrap[[]domain.CalendarAppointment](raw)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func (c *Client) UpdateOrganisation(ctx context.Context, apiKey string, id int64, payload domain.UpdateOrganisationPayload) error {
	path := "/organisations/" + strconv.FormatInt(id, 10)
	if err := c.doJSON(ctx, "update_organisation", apiKey, http.MethodPatch, path, payload, nil); err != nil {
		return fmt.Errorf("update organisation: %w", err)
	}
	return nil
}

func (c *Client) ListLocations(ctx context.Context, apiKey string) ([]domain.Location, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "locations", apiKey, http.MethodGet, "/locations", nil, &raw); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	locations, err := unwrap[[]domain.Location](raw)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

func (c *Client) GetReferenceSettings(ctx context.Context, apiKey string) (*domain.ReferenceSettings, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, "settings", apiKey, http.MethodGet, "/settings", nil, &raw); err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	settings, err := unwrap[domain.ReferenceSettings](raw)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &settings, nil
}
