package domain

import "time"

// Enumerations
const (
	AccessAdmin       AccessLevel = "admin"
	AccessShopManager AccessLevel = "shop_manager"
)

type AccessLevel string

type Shop struct {
	ID       int64
	Name     string
	Location string
}

// Employee is a per-month payroll row: the same person appears once per
// month with that month's hours and pay.
type Employee struct {
	ID          int64
	Name        string
	ShopID      int64
	HoursWorked int
	Salary      float64
	Motivation  float64
	TotalSalary float64
	Month       string
}

type Workday struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Worked     bool
}

type Income struct {
	ID            int64
	ShopID        int64
	Date          time.Time
	OperationType string
	ItemName      string
	EmployeeID    int64
	Amount        float64
	Notes         string
}

type Return struct {
	ID         int64
	ShopID     int64
	Date       time.Time
	ItemName   string
	EmployeeID int64
	Amount     float64
	Notes      string
}

type Expense struct {
	ID       int64
	ShopID   int64
	Date     time.Time
	Category string
	Amount   float64
	Notes    string
}

// SalesReturn is a daily sales bucket: one row per shop per date holding
// the day's retail, wholesale and return totals with optional notes.
type SalesReturn struct {
	ID                  int64
	ShopID              int64
	Date                time.Time
	RetailSaleAmount    float64
	RetailSaleNote      string
	WholesaleSaleAmount float64
	WholesaleSaleNote   string
	ReturnAmount        float64
	ReturnNote          string
}

// ShopExpense is a daily expense bucket with six named sub-totals.
type ShopExpense struct {
	ID             int64
	ShopID         int64
	Date           time.Time
	Purchase       float64
	PurchaseNote   string
	StoreNeeds     float64
	StoreNeedsNote string
	Salary         float64
	SalaryNote     string
	Rent           float64
	RentNote       string
	Repair         float64
	RepairNote     string
	Marketing      float64
	MarketingNote  string
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	AccessLevel  AccessLevel
	ShopID       *int64
	CreatedAt    time.Time
}

// Scope derives the user's shop scope from its access level and shop binding.
func (u User) Scope() ShopScope {
	if u.AccessLevel == AccessAdmin || u.ShopID == nil {
		return Unrestricted()
	}
	return Restricted(*u.ShopID)
}

type Session struct {
	ID           int64
	UserID       int64
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}
