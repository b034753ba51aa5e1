package brinkclient

import "strings"

// Service namespaces and SOAPAction values for the Brink web services. The
// SOAPAction header must name the exact remote operation or the upstream
// rejects the call.
const (
	salesNamespace    = "http://www.brinksoftware.com/webservices/sales/v2"
	laborNamespace    = "http://www.brinksoftware.com/webservices/labor/v2"
	settingsNamespace = "http://www.brinksoftware.com/webservices/settings/v2"

	getOrdersAction    = salesNamespace + "/ISalesWebService2/GetOrders"
	getShiftsAction    = laborNamespace + "/ILaborWebService2/GetShifts"
	getEmployeesAction = settingsNamespace + "/ISettingsWebService2/GetEmployees"
)

type envelopeField struct {
	Name  string
	Value string
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// buildEnvelope renders a minimal SOAP 1.1 envelope containing only the
// fields each operation actually needs.
func buildEnvelope(operation, namespace string, fields ...envelopeField) string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	b.WriteString(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">`)
	b.WriteString(`<soap:Body>`)
	b.WriteString(`<` + operation + ` xmlns="` + namespace + `">`)

	for _, field := range fields {
		b.WriteString(`<` + field.Name + `>`)
		b.WriteString(xmlEscaper.Replace(field.Value))
		b.WriteString(`</` + field.Name + `>`)
	}

	b.WriteString(`</` + operation + `>`)
	b.WriteString(`</soap:Body>`)
	b.WriteString(`</soap:Envelope>`)

	return b.String()
}
