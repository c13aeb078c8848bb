package dto

type DashboardStats struct {
	TotalIncome        float64             `json:"totalIncome"`
	TotalExpense       float64             `json:"totalExpense"`
	Balance            float64             `json:"balance"`
	TransactionCount   int                 `json:"transactionCount"`
	RecentTransactions []RecentTransaction `json:"recentTransactions"`
	Period             string              `json:"period"`
	DateRange          DateRange           `json:"dateRange"`

	// Reserved extension points, always empty for now.
	MonthlyData       []MonthlyPoint      `json:"monthlyData"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
}

type RecentTransaction struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type MonthlyPoint struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type CategoryBreakdown struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Total    float64 `json:"total"`
}
