package brinkclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posbridge/brink-insights-api/internal/config"
	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

const ordersResponse = `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <GetOrdersResponse>
      <GetOrdersResult>
        <ResultCode>0</ResultCode>
        <Orders>
          <Order>
            <Id>1001</Id>
            <Number>57</Number>
            <Name>Drive Thru</Name>
            <Total>42.50</Total>
            <FirstSendTime>2026-08-15T18:00:00</FirstSendTime>
            <Payments>
              <Payment>
                <Id>p1</Id>
                <Amount>47.50</Amount>
                <TenderId>3</TenderId>
                <TipAmount>5.00</TipAmount>
                <EmployeeId>42</EmployeeId>
                <TillNumber>2</TillNumber>
                <PaymentDetails>
                  <PaymentDetail>
                    <Amount>20.00</Amount>
                    <TenderId>3</TenderId>
                    <TipAmount>1.50</TipAmount>
                  </PaymentDetail>
                </PaymentDetails>
              </Payment>
            </Payments>
          </Order>
          <Order>
            <Id>1002</Id>
            <Total>0</Total>
            <FirstSendTime>2026-08-15T18:05:00</FirstSendTime>
          </Order>
          <Order>
            <Id>1003</Id>
            <Total>12.00</Total>
          </Order>
          <Order>
            <Id>1004</Id>
            <Total>not-a-number</Total>
            <FirstSendTime>2026-08-15T18:10:00</FirstSendTime>
          </Order>
        </Orders>
      </GetOrdersResult>
    </GetOrdersResponse>
  </s:Body>
</s:Envelope>`

func TestParseOrders(t *testing.T) {
	orders, err := ParseOrders(ordersResponse)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, "1001", order.ID)
	assert.Equal(t, "57", order.Number)
	assert.Equal(t, "Drive Thru", order.Name)
	assert.Equal(t, 42.50, order.Total)

	require.NotNil(t, order.FirstSendTime)
	assert.Equal(t, time.Date(2026, 8, 15, 18, 0, 0, 0, time.UTC), *order.FirstSendTime)

	require.Len(t, order.Payments, 1)
	payment := order.Payments[0]
	assert.Equal(t, "p1", payment.ID)
	assert.Equal(t, 47.50, payment.Amount)
	assert.Equal(t, "3", payment.TenderID)
	assert.Equal(t, 5.00, payment.TipAmount)
	assert.Equal(t, "42", payment.EmployeeID)

	require.Len(t, payment.Details, 1)
	assert.Equal(t, 1.50, payment.Details[0].TipAmount)

	assert.InDelta(t, 6.50, order.TotalTips(), 1e-9)
}

func TestParseOrdersEmptyResponse(t *testing.T) {
	orders, err := ParseOrders(`<Envelope><Body><Orders></Orders></Body></Envelope>`)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

const shiftsResponse = `<s:Envelope>
  <s:Body>
    <GetShiftsResult>
      <ResultCode>0</ResultCode>
      <Shifts>
        <Shift>
          <EmployeeId>42</EmployeeId>
          <StartTime>2026-08-15T17:00:00</StartTime>
          <TotalMinutes>120</TotalMinutes>
          <PayRate>15.00</PayRate>
          <BusinessDate>2026-08-15</BusinessDate>
        </Shift>
        <Shift>
          <StartTime>2026-08-15T09:00:00</StartTime>
          <TotalMinutes>60</TotalMinutes>
        </Shift>
        <Shift>
          <EmployeeId>43</EmployeeId>
          <StartTime>last tuesday</StartTime>
          <TotalMinutes>60</TotalMinutes>
        </Shift>
        <Shift>
          <EmployeeId>44</EmployeeId>
          <StartTime>2026-08-15T09:00:00</StartTime>
          <TotalMinutes>0</TotalMinutes>
        </Shift>
      </Shifts>
    </GetShiftsResult>
  </s:Body>
</s:Envelope>`

func TestParseShifts(t *testing.T) {
	shifts, err := ParseShifts(shiftsResponse)
	require.NoError(t, err)
	require.Len(t, shifts, 1)

	shift := shifts[0]
	assert.Equal(t, "42", shift.EmployeeID)
	assert.Equal(t, time.Date(2026, 8, 15, 17, 0, 0, 0, time.UTC), shift.StartTime)
	assert.Equal(t, 120, shift.MinutesWorked)
	assert.Equal(t, 15.00, shift.PayRate)
	assert.Equal(t, "2026-08-15", shift.BusinessDate)
}

const employeesResponse = `<s:Envelope>
  <s:Body>
    <GetEmployeesResult>
      <ResultCode>0</ResultCode>
      <Employees>
        <Employee>
          <Id>42</Id>
          <FirstName>Ada</FirstName>
          <LastName>Lovelace</LastName>
          <Active>true</Active>
          <PayRate>12.00</PayRate>
          <Jobs>
            <Job>
              <Id>j-100</Id>
              <PayRate>18.50</PayRate>
            </Job>
            <Job>
              <Id>j-200</Id>
              <PayRate>9.00</PayRate>
            </Job>
          </Jobs>
        </Employee>
        <Employee>
          <Id>43</Id>
          <FirstName>Gone</FirstName>
          <Active>false</Active>
        </Employee>
        <Employee>
          <FirstName>NoId</FirstName>
          <Active>true</Active>
        </Employee>
        <Employee>
          <Id>45</Id>
          <FirstName>Flag</FirstName>
          <Active>1</Active>
          <PayRate>11.00</PayRate>
        </Employee>
      </Employees>
    </GetEmployeesResult>
  </s:Body>
</s:Envelope>`

func TestParseEmployees(t *testing.T) {
	employees, err := ParseEmployees(employeesResponse)
	require.NoError(t, err)
	require.Len(t, employees, 2)

	ada := employees[0]
	assert.Equal(t, "42", ada.EmployeeID)
	assert.Equal(t, "Ada", ada.FirstName)
	assert.Equal(t, "Lovelace", ada.LastName)
	assert.Equal(t, 12.00, ada.PayRate)
	assert.Equal(t, "j-100", ada.JobCodeID)
	assert.Equal(t, 18.50, ada.JobTypePayRate)
	assert.Equal(t, 18.50, ada.EffectiveRate())
	assert.True(t, ada.Active)

	assert.Equal(t, "45", employees[1].EmployeeID)
	assert.Equal(t, 11.00, employees[1].EffectiveRate())
}

func TestParseUpstreamTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{name: "empty", raw: "", want: nil},
		{name: "garbage", raw: "last tuesday", want: nil},
		{
			name: "bare timestamp is UTC",
			raw:  "2026-08-15T18:00:00",
			want: timePtr(time.Date(2026, 8, 15, 18, 0, 0, 0, time.UTC)),
		},
		{
			name: "rfc3339 with offset",
			raw:  "2026-08-15T18:00:00-06:00",
			want: timePtr(time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)),
		},
		{
			name: "fractional seconds",
			raw:  "2026-08-15T18:00:00.1234567",
			want: timePtr(time.Date(2026, 8, 15, 18, 0, 0, 123456700, time.UTC)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseUpstreamTime(tt.raw)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.True(t, got.Equal(*tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestGetOrdersSendsCredentialsAndParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "access-token", r.Header.Get("AccessToken"))
		assert.Equal(t, "location-token", r.Header.Get("LocationToken"))
		assert.Equal(t, getOrdersAction, r.Header.Get("SOAPAction"))

		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "2026-08-15T00:00:00")

		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		_, _ = io.WriteString(w, ordersResponse)
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Brink.SalesURL = server.URL

	client := NewClient(cfg)

	orders, err := client.GetOrders(context.Background(), Credentials{
		AccessToken:   "access-token",
		LocationToken: "location-token",
	}, "2026-08-15T00:00:00")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "1001", orders[0].ID)
}

func TestPostHTTPFailureBecomesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Brink.LaborURL = server.URL

	client := NewClient(cfg)

	shifts, err := client.GetShifts(context.Background(), Credentials{}, "2026-08-15T00:00:00")
	assert.Nil(t, shifts)

	var upstreamErr *domain.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, "GetShifts", upstreamErr.Operation)
	assert.Equal(t, http.StatusInternalServerError, upstreamErr.ResultCode)
}

func TestPostNonZeroResultCodeBecomesUpstreamError(t *testing.T) {
	response := `<Envelope><Body><GetOrdersResult><ResultCode>3</ResultCode><Message>Invalid location token</Message></GetOrdersResult></Body></Envelope>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, response)
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Brink.SalesURL = server.URL

	client := NewClient(cfg)

	orders, err := client.GetOrders(context.Background(), Credentials{}, "2026-08-15T00:00:00")
	assert.Nil(t, orders)

	var upstreamErr *domain.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, 3, upstreamErr.ResultCode)
	assert.Equal(t, "Invalid location token", upstreamErr.Message)
	assert.Contains(t, upstreamErr.Error(), "GetOrders")
}

func TestBuildEnvelopeEscapesFieldValues(t *testing.T) {
	envelope := buildEnvelope("GetOrders", salesNamespace,
		envelopeField{Name: "businessDate", Value: `2026-08-15T00:00:00`},
		envelopeField{Name: "note", Value: `a < b & "c"`},
	)

	assert.Contains(t, envelope, salesNamespace)
	assert.Contains(t, envelope, "<businessDate>2026-08-15T00:00:00</businessDate>")
	assert.Contains(t, envelope, "a &lt; b &amp; &quot;c&quot;")
	assert.False(t, strings.Contains(envelope, `a < b`))
}
