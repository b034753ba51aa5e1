package domain

// HourBucket accumulates sales and labor metrics for one local hour of the
// business day (0-23). Buckets are request-scoped and discarded after the
// response is built.
type HourBucket struct {
	Hour             int     `json:"hour"`
	Sales            float64 `json:"sales"`
	Guests           int     `json:"guests"`
	Orders           int     `json:"orders"`
	GuestAverage     float64 `json:"guest_average"`
	LaborHours       float64 `json:"labor_hours"`
	LaborCost        float64 `json:"labor_cost"`
	EmployeesWorking int     `json:"employees_working"`
}

// HourlySalesRow is the sales view of one hour bucket.
type HourlySalesRow struct {
	Hour         int     `json:"hour"`
	Sales        float64 `json:"sales"`
	Guests       int     `json:"guests"`
	Orders       int     `json:"orders"`
	GuestAverage float64 `json:"guest_average"`
}

// HourlyLaborRow is the labor view of one hour bucket.
type HourlyLaborRow struct {
	Hour             int     `json:"hour"`
	LaborHours       float64 `json:"labor_hours"`
	LaborCost        float64 `json:"labor_cost"`
	EmployeesWorking int     `json:"employees_working"`
}

// DailyReport is the hourly dashboard response for one location and business
// date.
type DailyReport struct {
	Location            string           `json:"location"`
	LocationID          string           `json:"location_id"`
	BusinessDate        string           `json:"business_date"`
	Degraded            bool             `json:"degraded,omitempty"`
	HourlySales         []HourlySalesRow `json:"hourly_sales"`
	HourlyLabor         []HourlyLaborRow `json:"hourly_labor"`
	TotalSales          float64          `json:"total_sales"`
	TotalGuests         int              `json:"total_guests"`
	TotalOrders         int              `json:"total_orders"`
	TotalTips           float64          `json:"total_tips"`
	TotalLaborCost      float64          `json:"total_labor_cost"`
	TotalLaborHours     float64          `json:"total_labor_hours"`
	LaborPercentage     float64          `json:"labor_percentage"`
	OrderAverage        float64          `json:"order_average"`
	OverallGuestAverage float64          `json:"overall_guest_average"`
}
