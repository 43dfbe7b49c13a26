package response

type BookSeva struct {
	ID              string `json:"id"`
	Place           string `json:"place"`
	VolunteerName   string `json:"volunteer_name"`
	BookName        string `json:"book_name"`
	BookType        string `json:"book_type"`
	Quantity        int    `json:"quantity"`
	CoordinatorName string `json:"coordinator_name"`
	DriverName      string `json:"driver_name"`
	Date            string `json:"date"`
	CreatedAt       string `json:"created_at"`
}

type CallingSeva struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	MobileNo       string `json:"mobile_no"`
	Status         string `json:"status"`
	AssignedBhagat string `json:"assigned_bhagat"`
	Remarks        string `json:"remarks"`
	CreatedAt      string `json:"created_at"`
}

type ExpenseCategory string

const (
	ExpenseCategorySeva     ExpenseCategory = "seva"
	ExpenseCategoryNaamdaan ExpenseCategory = "naamdaan"
)

type Expense struct {
	ID        string          `json:"id"`
	ItemName  string          `json:"item_name"`
	Price     float64         `json:"price"`
	Quantity  int             `json:"quantity"`
	Total     float64         `json:"total"`
	Category  ExpenseCategory `json:"category"`
	Date      string          `json:"date"`
	CreatedAt string          `json:"created_at"`
}

// Constants feeds the dynamic option lists of the entry forms.
type Constants struct {
	CoordinatorName []string `json:"coordinator_name"`
	DriverName      []string `json:"driver_name"`
	Status          []string `json:"status"`
	AssignedBhagat  []string `json:"assigned_bhagat"`
}
