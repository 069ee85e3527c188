package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
)

// ErrorResponse is the uniform error body. CompletedLabels is present only on
// purchase failures that issued some labels before aborting; those labels are
// already charged and must be surfaced for reconciliation.
type ErrorResponse struct {
	Code            int        `json:"code"`
	Message         string     `json:"message"`
	CompletedLabels []LabelDTO `json:"completed_labels,omitempty"`
}

// PackageDTO is one parcel in a rates or purchase request. Dimensions are
// inches, weight pounds.
type PackageDTO struct {
	Length      float64 `json:"length" validate:"required,gt=0"`
	Width       float64 `json:"width" validate:"required,gt=0"`
	Height      float64 `json:"height" validate:"required,gt=0"`
	Weight      float64 `json:"weight" validate:"required,gt=0"`
	Description string  `json:"description"`
}

// DestinationDTO is the recipient address in a rates or purchase request.
type DestinationDTO struct {
	Name    string `json:"name" validate:"required"`
	Street  string `json:"street" validate:"required"`
	Street2 string `json:"street2"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// RatesRequest asks for aggregated quotes covering every listed package.
type RatesRequest struct {
	Packages    []PackageDTO   `json:"packages" validate:"required,min=1,dive"`
	Destination DestinationDTO `json:"destination" validate:"required"`
}

// PackageRateDTO is one package's constituent share of a quote.
type PackageRateDTO struct {
	PackageIndex int    `json:"package_index"`
	RateID       string `json:"rate_id"`
	Amount       string `json:"amount"`
}

// QuoteDTO is one aggregated multi-package quote.
type QuoteDTO struct {
	Provider      string           `json:"provider"`
	Service       string           `json:"service"`
	Method        string           `json:"method"`
	EstimatedDays int              `json:"estimated_days"`
	Amount        string           `json:"amount"`
	Currency      string           `json:"currency"`
	Rates         []PackageRateDTO `json:"rates"`
}

// SelectionDTO pairs one package with the rate to purchase for it.
type SelectionDTO struct {
	PackageIndex int    `json:"package_index" validate:"min=0"`
	RateID       string `json:"rate_id" validate:"required"`
}

// ChosenQuoteDTO is the accepted quote summary recorded with the order.
type ChosenQuoteDTO struct {
	Method        string `json:"method" validate:"required"`
	EstimatedDays int    `json:"estimated_days" validate:"min=0"`
	Amount        string `json:"amount" validate:"required"`
	Currency      string `json:"currency" validate:"required"`
}

// PurchaseRequest buys one label per package. OrderID makes the purchase
// idempotent and requires the chosen quote summary.
type PurchaseRequest struct {
	Packages    []PackageDTO    `json:"packages" validate:"required,min=1,dive"`
	Destination DestinationDTO  `json:"destination" validate:"required"`
	Selections  []SelectionDTO  `json:"package_rates" validate:"required,min=1,dive"`
	OrderID     string          `json:"order_id"`
	Chosen      *ChosenQuoteDTO `json:"selected_quote" validate:"required_with=OrderID"`
}

// LabelDTO is one purchased shipping label.
type LabelDTO struct {
	PackageIndex   int    `json:"package_index"`
	TrackingNumber string `json:"tracking_number"`
	LabelURL       string `json:"label_url"`
	TrackingURL    string `json:"tracking_url,omitempty"`
}

// PurchaseResponse reports a fully successful purchase.
type PurchaseResponse struct {
	OrderID string     `json:"order_id,omitempty"`
	Labels  []LabelDTO `json:"labels"`
}

// OrderResponse is a recorded order returned by the lookup endpoint.
type OrderResponse struct {
	OrderID          string     `json:"order_id"`
	Method           string     `json:"method"`
	DeliveryEstimate int        `json:"delivery_estimate"`
	Amount           string     `json:"amount"`
	Currency         string     `json:"currency"`
	Labels           []LabelDTO `json:"labels"`
	CompletedAt      time.Time  `json:"completed_at"`
}

func (d PackageDTO) toDomain() (shipment.Package, error) {
	return shipment.NewPackage(d.Length, d.Width, d.Height, d.Weight, d.Description)
}

func (d DestinationDTO) toDomain() (shipment.Destination, error) {
	return shipment.NewDestination(d.Name, d.Street, d.Street2, d.City, d.State,
		d.Zip, d.Country, d.Phone, d.Email)
}

func packagesToDomain(dtos []PackageDTO) ([]shipment.Package, error) {
	packages := make([]shipment.Package, 0, len(dtos))
	for _, dto := range dtos {
		pkg, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

func selectionsToDomain(dtos []SelectionDTO) ([]commands.RateSelection, error) {
	selections := make([]commands.RateSelection, 0, len(dtos))
	for _, dto := range dtos {
		sel, err := commands.NewRateSelection(dto.PackageIndex, dto.RateID)
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}
	return selections, nil
}

func quoteToDTO(quote *shipment.AggregatedQuote) QuoteDTO {
	rates := make([]PackageRateDTO, 0, len(quote.Rates()))
	for _, rate := range quote.Rates() {
		rates = append(rates, PackageRateDTO{
			PackageIndex: rate.PackageIndex(),
			RateID:       rate.RateID(),
			Amount:       rate.Amount().AmountString(),
		})
	}

	return QuoteDTO{
		Provider:      quote.Provider(),
		Service:       quote.Service(),
		Method:        quote.Method(),
		EstimatedDays: quote.EstimatedDays(),
		Amount:        quote.Total().AmountString(),
		Currency:      quote.Total().Currency(),
		Rates:         rates,
	}
}

func labelsToDTO(labels []order.Label) []LabelDTO {
	dtos := make([]LabelDTO, 0, len(labels))
	for _, label := range labels {
		dtos = append(dtos, LabelDTO{
			PackageIndex:   label.PackageIndex(),
			TrackingNumber: label.TrackingNumber(),
			LabelURL:       label.LabelURL(),
			TrackingURL:    label.TrackingURL(),
		})
	}
	return dtos
}

func recordToDTO(record *order.Record) OrderResponse {
	return OrderResponse{
		OrderID:          record.ID(),
		Method:           record.Method(),
		DeliveryEstimate: record.DeliveryEstimate(),
		Amount:           record.Total().AmountString(),
		Currency:         record.Total().Currency(),
		Labels:           labelsToDTO(record.Labels()),
		CompletedAt:      record.CompletedAt(),
	}
}
