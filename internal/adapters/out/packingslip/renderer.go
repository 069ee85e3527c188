// Package packingslip renders the HTML packing slip that accompanies an
// order's shipping labels to the printer.
package packingslip

import (
	"bytes"
	"fmt"
	"html/template"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
)

const slipTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Packing Slip {{.OrderID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
.summary { margin-top: 1.5em; }
</style>
</head>
<body>
<h1>Packing Slip</h1>
<p>Order: <strong>{{.OrderID}}</strong><br>
Completed: {{.CompletedAt}}</p>
<h2>Ship To</h2>
<p>{{.Name}}<br>
{{.Street}}{{if .Street2}}<br>{{.Street2}}{{end}}<br>
{{.City}}, {{.State}} {{.Zip}}<br>
{{.Country}}</p>
<h2>Packages</h2>
<table>
<tr><th>#</th><th>Contents</th><th>Dimensions (in)</th><th>Weight (lb)</th><th>Tracking</th></tr>
{{range .Packages}}<tr>
<td>{{.Number}}</td><td>{{.Description}}</td><td>{{.Dimensions}}</td><td>{{.Weight}}</td><td>{{.Tracking}}</td>
</tr>
{{end}}</table>
<p class="summary">Shipped via <strong>{{.Method}}</strong>
{{if .EstimatedDays}}(est. {{.EstimatedDays}} days){{end}}<br>
Total: <strong>{{.Total}}</strong></p>
</body>
</html>
`

type slipPackage struct {
	Number      int
	Description string
	Dimensions  string
	Weight      string
	Tracking    string
}

type slipData struct {
	OrderID       string
	CompletedAt   string
	Name          string
	Street        string
	Street2       string
	City          string
	State         string
	Zip           string
	Country       string
	Packages      []slipPackage
	Method        string
	EstimatedDays int
	Total         string
}

// Renderer produces packing slip HTML from an order record. It implements
// ports.PackingSlipRenderer.
type Renderer struct {
	tmpl *template.Template
}

var _ ports.PackingSlipRenderer = (*Renderer)(nil)

// NewRenderer creates a Renderer with the built-in slip template.
func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("packingslip").Parse(slipTemplate)),
	}
}

// Render produces the HTML packing slip for a completed order. Tracking
// numbers are matched to packages by the labels' package indexes.
func (r *Renderer) Render(
	record *order.Record, packages []shipment.Package, dest shipment.Destination,
) ([]byte, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}
	if err := dest.Validate(); err != nil {
		return nil, err
	}

	tracking := make(map[int]string, len(record.Labels()))
	for _, label := range record.Labels() {
		tracking[label.PackageIndex()] = label.TrackingNumber()
	}

	slipPackages := make([]slipPackage, 0, len(packages))
	for i, pkg := range packages {
		slipPackages = append(slipPackages, slipPackage{
			Number:      i + 1,
			Description: pkg.Description(),
			Dimensions:  fmt.Sprintf("%g x %g x %g", pkg.Length(), pkg.Width(), pkg.Height()),
			Weight:      fmt.Sprintf("%g", pkg.Weight()),
			Tracking:    tracking[i],
		})
	}

	data := slipData{
		OrderID:       record.ID(),
		CompletedAt:   record.CompletedAt().Format("2006-01-02 15:04 MST"),
		Name:          dest.Name(),
		Street:        dest.Street(),
		Street2:       dest.Street2(),
		City:          dest.City(),
		State:         dest.State(),
		Zip:           dest.Zip(),
		Country:       dest.Country(),
		Packages:      slipPackages,
		Method:        record.Method(),
		EstimatedDays: record.DeliveryEstimate(),
		Total:         record.Total().String(),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render packing slip: %w", err)
	}
	return buf.Bytes(), nil
}
