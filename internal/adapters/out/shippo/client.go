// Package shippo implements the CarrierGateway port against a Shippo-style
// shipping API: shipments are created per package to collect rates, and a
// transaction per chosen rate buys the label.
package shippo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

const defaultBaseURL = "https://api.goshippo.com"

const defaultTimeout = 15 * time.Second

// Origin is the fixed ship-from address sent with every shipment.
type Origin struct {
	Name    string
	Street  string
	City    string
	State   string
	Zip     string
	Country string
	Phone   string
	Email   string
}

// Config carries the client's connection settings. APIKey and a complete
// Origin are required; BaseURL and Timeout fall back to sensible defaults.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Origin  Origin
}

// Client talks to the carrier API. It implements ports.CarrierGateway.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

var _ ports.CarrierGateway = (*Client)(nil)

// NewClient creates a carrier API client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errs.NewValueIsRequiredError("shippo api key")
	}
	if cfg.Origin.Street == "" || cfg.Origin.City == "" || cfg.Origin.Zip == "" {
		return nil, errs.NewValueIsRequiredError("ship-from origin address")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// --- wire types ---

type addressPayload struct {
	Name    string `json:"name"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type parcelPayload struct {
	Length       string `json:"length"`
	Width        string `json:"width"`
	Height       string `json:"height"`
	DistanceUnit string `json:"distance_unit"`
	Weight       string `json:"weight"`
	MassUnit     string `json:"mass_unit"`
}

type shipmentRequest struct {
	AddressFrom addressPayload  `json:"address_from"`
	AddressTo   addressPayload  `json:"address_to"`
	Parcels     []parcelPayload `json:"parcels"`
	Async       bool            `json:"async"`
}

type serviceLevelPayload struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

type ratePayload struct {
	ObjectID      string              `json:"object_id"`
	Provider      string              `json:"provider"`
	ServiceLevel  serviceLevelPayload `json:"servicelevel"`
	Amount        string              `json:"amount"`
	Currency      string              `json:"currency"`
	EstimatedDays int                 `json:"estimated_days"`
}

type shipmentResponse struct {
	ObjectID string           `json:"object_id"`
	Status   string           `json:"status"`
	Rates    []ratePayload    `json:"rates"`
	Messages []messagePayload `json:"messages"`
}

type transactionRequest struct {
	Rate          string `json:"rate"`
	LabelFileType string `json:"label_file_type"`
	Async         bool   `json:"async"`
}

type transactionResponse struct {
	ObjectID       string           `json:"object_id"`
	Status         string           `json:"status"`
	TrackingNumber string           `json:"tracking_number"`
	LabelURL       string           `json:"label_url"`
	TrackingURL    string           `json:"tracking_url_provider"`
	Messages       []messagePayload `json:"messages"`
}

type messagePayload struct {
	Source string `json:"source,omitempty"`
	Code   string `json:"code,omitempty"`
	Text   string `json:"text"`
}

// APIError is a carrier API failure: a non-2xx response or a transaction that
// came back in ERROR status. Messages holds the remote explanation texts.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("carrier api error (status %d): %s",
			e.StatusCode, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("carrier api error (status %d)", e.StatusCode)
}

// QuoteShipment creates a shipment for one package and returns the carrier's
// rate offers for it. Offers missing an id, provider or service token are
// skipped; an unparsable amount fails the call.
func (c *Client) QuoteShipment(
	ctx context.Context, pkg shipment.Package, dest shipment.Destination,
) ([]shipment.RateOffer, error) {
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	if err := dest.Validate(); err != nil {
		return nil, err
	}

	reqBody := shipmentRequest{
		AddressFrom: c.originPayload(),
		AddressTo: addressPayload{
			Name:    dest.Name(),
			Street1: dest.Street(),
			Street2: dest.Street2(),
			City:    dest.City(),
			State:   dest.State(),
			Zip:     dest.Zip(),
			Country: dest.Country(),
			Phone:   dest.Phone(),
			Email:   dest.Email(),
		},
		Parcels: []parcelPayload{{
			Length:       formatDimension(pkg.Length()),
			Width:        formatDimension(pkg.Width()),
			Height:       formatDimension(pkg.Height()),
			DistanceUnit: shipment.DistanceUnit,
			Weight:       formatDimension(pkg.Weight()),
			MassUnit:     shipment.MassUnit,
		}},
		Async: false,
	}

	var resp shipmentResponse
	if err := c.post(ctx, "/shipments/", reqBody, &resp); err != nil {
		return nil, err
	}

	offers := make([]shipment.RateOffer, 0, len(resp.Rates))
	for _, rate := range resp.Rates {
		if rate.ObjectID == "" || rate.Provider == "" || rate.ServiceLevel.Token == "" {
			continue
		}
		currency := rate.Currency
		if currency == "" {
			currency = "USD"
		}
		amount, err := kernel.NewMoneyFromString(rate.Amount, currency)
		if err != nil {
			return nil, fmt.Errorf("carrier returned an unparsable rate amount %q: %w", rate.Amount, err)
		}
		days := rate.EstimatedDays
		if days < 0 {
			days = 0
		}
		offer, err := shipment.NewRateOffer(rate.ObjectID, rate.Provider,
			rate.ServiceLevel.Name, rate.ServiceLevel.Token, amount, days)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	return offers, nil
}

// PurchaseLabel buys the label for rateID via a synchronous transaction.
// A transaction in ERROR status is an *APIError carrying the remote messages.
func (c *Client) PurchaseLabel(ctx context.Context, rateID string) (ports.IssuedLabel, error) {
	if rateID == "" {
		return ports.IssuedLabel{}, errs.NewValueIsRequiredError("rate id")
	}

	reqBody := transactionRequest{
		Rate:          rateID,
		LabelFileType: "PDF",
		Async:         false,
	}

	var resp transactionResponse
	if err := c.post(ctx, "/transactions/", reqBody, &resp); err != nil {
		return ports.IssuedLabel{}, err
	}

	if resp.Status != "SUCCESS" {
		return ports.IssuedLabel{}, &APIError{
			StatusCode: http.StatusOK,
			Messages:   messageTexts(resp.Messages),
		}
	}

	return ports.IssuedLabel{
		TrackingNumber: resp.TrackingNumber,
		LabelURL:       resp.LabelURL,
		TrackingURL:    resp.TrackingURL,
	}, nil
}

func (c *Client) originPayload() addressPayload {
	country := c.cfg.Origin.Country
	if country == "" {
		country = shipment.SupportedCountry
	}
	return addressPayload{
		Name:    c.cfg.Origin.Name,
		Street1: c.cfg.Origin.Street,
		City:    c.cfg.Origin.City,
		State:   c.cfg.Origin.State,
		Zip:     c.cfg.Origin.Zip,
		Country: country,
		Phone:   c.cfg.Origin.Phone,
		Email:   c.cfg.Origin.Email,
	}
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal carrier request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create carrier request: %w", err)
	}
	req.Header.Set("Authorization", "ShippoToken "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call carrier api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read carrier response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var remote struct {
			Messages []messagePayload `json:"messages"`
			Detail   string           `json:"detail"`
		}
		if json.Unmarshal(raw, &remote) == nil {
			apiErr.Messages = messageTexts(remote.Messages)
			if len(apiErr.Messages) == 0 && remote.Detail != "" {
				apiErr.Messages = []string{remote.Detail}
			}
		}
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse carrier response: %w", err)
	}
	return nil
}

func messageTexts(messages []messagePayload) []string {
	texts := make([]string, 0, len(messages))
	for _, m := range messages {
		if m.Text != "" {
			texts = append(texts, m.Text)
		}
	}
	return texts
}

func formatDimension(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
