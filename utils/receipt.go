package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/techguardpro/techguard-api/models"
)

// Paper formats for printable documents. The three formats are mutually
// exclusive per print request.
const (
	FormatA4        = "A4"
	FormatThermal80 = "80mm"
	FormatThermal58 = "58mm"
)

// PrintFormats lists every supported paper format.
var PrintFormats = []string{FormatA4, FormatThermal80, FormatThermal58}

// IsValidPrintFormat reports whether f is a supported paper format.
func IsValidPrintFormat(f string) bool {
	for _, v := range PrintFormats {
		if v == f {
			return true
		}
	}
	return false
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<html>
  <head>
    <title>Impressão {{.Order.Code}}</title>
    <style>
      @page { margin: 0; }
      body {
        font-family: 'Courier New', Courier, monospace;
        width: {{.Width}};
        margin: 0 auto;
        padding: {{.Padding}};
        font-size: {{.FontSize}};
        color: #000;
      }
      .header { text-align: center; border-bottom: 1px dashed #000; padding-bottom: 10px; margin-bottom: 10px; }
      .title { font-size: {{.TitleSize}}; font-weight: bold; margin-bottom: 5px; }
      .section { margin-bottom: 15px; }
      .section-title { font-weight: bold; text-decoration: underline; margin-bottom: 5px; display: block; }
      .field { margin-bottom: 3px; }
      .footer { border-top: 1px dashed #000; padding-top: 10px; margin-top: 20px; font-size: 10px; text-align: center; }
      .signature { margin-top: 40px; border-top: 1px solid #000; width: 80%; margin-left: auto; margin-right: auto; }
    </style>
  </head>
  <body>
    <div class="header">
      <div class="title">TECHGUARD PRO</div>
      <div>Assistência Técnica e CFTV</div>
      <div>Data: {{.EntryDate}}</div>
    </div>
    <div class="section"><div class="title" style="text-align:center;">{{.Order.Code}}</div></div>
    <div class="section">
      <span class="section-title">CLIENTE</span>
      <div class="field">Nome: {{.Order.ClientName}}</div>
      <div class="field">Tel: {{.Order.ClientPhone}}</div>
      <div class="field">End: {{.Address}}</div>
    </div>
    <div class="section">
      <span class="section-title">EQUIPAMENTO</span>
      <div class="field">Modelo: {{.Order.DeviceModel}}</div>
      <div class="field">Status: {{.Order.Status}}</div>
    </div>
    <div class="section">
      <span class="section-title">PROBLEMA RELATADO</span>
      <div>{{.Order.IssueDescription}}</div>
    </div>
    <div class="section">
      <span class="section-title">ORÇAMENTO</span>
      <div class="field" style="font-size: 1.2em; font-weight:bold;">
        Valor Est.: R$ {{.Cost}}
      </div>
    </div>
    <div class="footer">
      <div>Termos: Garantia de 90 dias para mão de obra. Equipamentos não retirados em 90 dias serão descartados.</div>
      <div class="signature">Assinatura do Cliente</div>
    </div>
  </body>
</html>
`))

type receiptData struct {
	Order     models.ServiceOrder
	EntryDate string
	Address   string
	Cost      string
	Width     template.CSS
	Padding   template.CSS
	FontSize  template.CSS
	TitleSize template.CSS
}

// BuildOrderReceipt renders the self-contained printable document for a
// service order in the requested paper format.
func BuildOrderReceipt(order models.ServiceOrder, format string) (string, error) {
	if !IsValidPrintFormat(format) {
		return "", fmt.Errorf("unsupported print format: %q", format)
	}

	data := receiptData{
		Order:     order,
		EntryDate: formatDateBR(order.EntryDate),
		Address:   "Não informado",
		Cost:      "A DEFINIR",
	}
	if order.ClientAddress != nil && *order.ClientAddress != "" {
		data.Address = *order.ClientAddress
	}
	if order.EstimatedCost != nil {
		data.Cost = fmt.Sprintf("%.2f", *order.EstimatedCost)
	}

	switch format {
	case FormatThermal58:
		data.Width = "58mm"
	case FormatThermal80:
		data.Width = "80mm"
	default:
		data.Width = "210mm"
	}
	if format == FormatA4 {
		data.Padding, data.FontSize, data.TitleSize = "20mm", "14px", "24px"
	} else {
		data.Padding, data.FontSize, data.TitleSize = "5mm", "12px", "16px"
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.String(), nil
}

// formatDateBR converts an ISO date to Brazilian dd/mm/yyyy display form.
// Unparseable values pass through untouched.
func formatDateBR(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}
