package brinkclient

import (
	"context"
	"strconv"
	"time"

	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/pkg/log"
	"github.com/posbridge/brink-insights-api/pkg/soapxml"
)

// upstreamTimeFormats lists the timestamp layouts observed in Brink
// responses. Timestamps without an offset are UTC.
var upstreamTimeFormats = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
}

func (c *BrinkClient) GetOrders(ctx context.Context, creds Credentials, businessDate string) ([]domain.Order, error) {
	envelope := buildEnvelope("GetOrders", salesNamespace,
		envelopeField{Name: "businessDate", Value: businessDate},
	)

	body, err := c.post(ctx, c.config.Brink.SalesURL, "GetOrders", getOrdersAction, creds, envelope)
	if err != nil {
		return nil, err
	}

	return ParseOrders(body)
}

// ParseOrders extracts the order records from a GetOrders response. Orders
// with no first send time or a non-positive total are incomplete or test data
// and are dropped here. A malformed order block is skipped with a warning,
// never aborting the whole parse.
func ParseOrders(body string) ([]domain.Order, error) {
	blocks, err := soapxml.ExtractRepeated(body, "Order")
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(blocks))

	for _, block := range blocks {
		order, ok := parseOrderBlock(block)
		if !ok {
			continue
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func parseOrderBlock(block string) (domain.Order, bool) {
	id, _ := soapxml.ExtractScalar(block, "Id")
	totalStr, _ := soapxml.ExtractScalar(block, "Total")

	total, err := strconv.ParseFloat(totalStr, 64)
	if err != nil {
		log.L.WithFields(log.Fields{
			"order_id": id,
			"total":    totalStr,
		}).Warn("brink: skipping order with unparsable total")
		return domain.Order{}, false
	}

	if total <= 0 {
		return domain.Order{}, false
	}

	sendTimeStr, _ := soapxml.ExtractScalar(block, "FirstSendTime")
	sendTime := parseUpstreamTime(sendTimeStr)
	if sendTime == nil {
		// Never sent to the kitchen: open or voided order.
		return domain.Order{}, false
	}

	number, _ := soapxml.ExtractScalar(block, "Number")
	name, _ := soapxml.ExtractScalar(block, "Name")

	return domain.Order{
		ID:            id,
		Number:        number,
		Name:          name,
		Total:         total,
		FirstSendTime: sendTime,
		Payments:      parsePayments(block),
	}, true
}

func parsePayments(orderBlock string) []domain.Payment {
	blocks, err := soapxml.ExtractRepeated(orderBlock, "Payment")
	if err != nil || len(blocks) == 0 {
		return nil
	}

	payments := make([]domain.Payment, 0, len(blocks))

	for _, block := range blocks {
		id, _ := soapxml.ExtractScalar(block, "Id")
		tenderID, _ := soapxml.ExtractScalar(block, "TenderId")
		employeeID, _ := soapxml.ExtractScalar(block, "EmployeeId")
		tillNumber, _ := soapxml.ExtractScalar(block, "TillNumber")

		payments = append(payments, domain.Payment{
			ID:         id,
			Amount:     parseFloatField(block, "Amount"),
			TenderID:   tenderID,
			TipAmount:  parseFloatField(block, "TipAmount"),
			EmployeeID: employeeID,
			TillNumber: tillNumber,
			Details:    parsePaymentDetails(block),
		})
	}

	return payments
}

func parsePaymentDetails(paymentBlock string) []domain.PaymentDetail {
	blocks, err := soapxml.ExtractRepeated(paymentBlock, "PaymentDetail")
	if err != nil || len(blocks) == 0 {
		return nil
	}

	details := make([]domain.PaymentDetail, 0, len(blocks))

	for _, block := range blocks {
		tenderID, _ := soapxml.ExtractScalar(block, "TenderId")

		details = append(details, domain.PaymentDetail{
			Amount:    parseFloatField(block, "Amount"),
			TenderID:  tenderID,
			TipAmount: parseFloatField(block, "TipAmount"),
		})
	}

	return details
}

func parseFloatField(block, tag string) float64 {
	raw, _ := soapxml.ExtractScalar(block, tag)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return value
}

func parseUpstreamTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	for _, layout := range upstreamTimeFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}

	return nil
}
