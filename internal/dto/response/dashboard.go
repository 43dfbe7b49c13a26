package response

type BookSevaTotals struct {
	Entries int `json:"entries"`
	Books   int `json:"books"`
}

type CallingSevaTotals struct {
	Entries  int            `json:"entries"`
	ByStatus map[string]int `json:"by_status"`
}

type ExpenseTotals struct {
	Entries    int                         `json:"entries"`
	Amount     float64                     `json:"amount"`
	ByCategory map[ExpenseCategory]float64 `json:"by_category"`
}

// DayCount is one bar of the trend chart.
type DayCount struct {
	Date        string `json:"date"`
	BookSeva    int    `json:"book_seva"`
	CallingSeva int    `json:"calling_seva"`
	Expenses    int    `json:"expenses"`
}

type DashboardSummary struct {
	FromDate    string            `json:"from_date"`
	ToDate      string            `json:"to_date"`
	BookSeva    BookSevaTotals    `json:"book_seva"`
	CallingSeva CallingSevaTotals `json:"calling_seva"`
	Expenses    ExpenseTotals     `json:"expenses"`
	Trend       []DayCount        `json:"trend"`
}
