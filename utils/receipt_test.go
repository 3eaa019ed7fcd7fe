package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techguardpro/techguard-api/models"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func sampleOrder() models.ServiceOrder {
	return models.ServiceOrder{
		Code:             "OS-1001",
		ClientName:       "Carlos Eduardo",
		ClientPhone:      "(11) 98888-7777",
		DeviceModel:      "Dell Vostro 3500",
		IssueDescription: "Não liga, suspeita de curto na placa mãe.",
		EntryDate:        "2023-10-25",
		Status:           models.OSStatusEmAnalise,
		Priority:         models.PriorityAlta,
		Technician:       "João Silva",
	}
}

func TestBuildOrderReceiptA4(t *testing.T) {
	order := sampleOrder()
	order.ClientAddress = strPtr("Rua das Flores, 123")
	order.EstimatedCost = floatPtr(450)

	doc, err := BuildOrderReceipt(order, FormatA4)
	require.NoError(t, err)

	assert.Contains(t, doc, "TECHGUARD PRO")
	assert.Contains(t, doc, "OS-1001")
	assert.Contains(t, doc, "Carlos Eduardo")
	assert.Contains(t, doc, "Rua das Flores, 123")
	assert.Contains(t, doc, "Dell Vostro 3500")
	assert.Contains(t, doc, "R$ 450.00")
	assert.Contains(t, doc, "width: 210mm")
	assert.Contains(t, doc, "Data: 25/10/2023")
	assert.Contains(t, doc, "Garantia de 90 dias")
}

func TestBuildOrderReceiptThermalWidths(t *testing.T) {
	order := sampleOrder()

	for format, width := range map[string]string{
		FormatThermal80: "width: 80mm",
		FormatThermal58: "width: 58mm",
	} {
		doc, err := BuildOrderReceipt(order, format)
		require.NoError(t, err)
		assert.Contains(t, doc, width)
		assert.Contains(t, doc, "padding: 5mm", "thermal formats use the tight padding")
	}
}

func TestBuildOrderReceiptMissingOptionals(t *testing.T) {
	// Without an address or estimated cost the receipt shows the
	// placeholders instead of blanks
	doc, err := BuildOrderReceipt(sampleOrder(), FormatA4)
	require.NoError(t, err)

	assert.Contains(t, doc, "Não informado")
	assert.Contains(t, doc, "A DEFINIR")
}

func TestBuildOrderReceiptRejectsUnknownFormat(t *testing.T) {
	_, err := BuildOrderReceipt(sampleOrder(), "letter")
	assert.Error(t, err)
}
