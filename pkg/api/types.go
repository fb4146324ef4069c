// Package api defines the request and response messages of the expense
// tracker RPC services. Money travels as decimal strings ("12.50") and dates
// as YYYY-MM-DD.
package api

// Participant is a person who pays for or shares expenses.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at"`
}

type CreateParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type CreateParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type ListParticipantsRequest struct {
	ActiveOnly bool `json:"active_only,omitempty"`
}

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
}

// UpdateParticipantRequest changes only the fields that are set.
type UpdateParticipantRequest struct {
	ID     string  `json:"id"`
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type UpdateParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type DeleteParticipantRequest struct {
	ID string `json:"id"`
}

type DeleteParticipantResponse struct{}

// Category labels expenses for statistics.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
	CreatedAt int64  `json:"created_at"`
}

type CreateCategoryRequest struct {
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	Color     string `json:"color,omitempty"`
	IsDefault bool   `json:"is_default,omitempty"`
}

type CreateCategoryResponse struct {
	Category *Category `json:"category"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type DeleteCategoryRequest struct {
	ID string `json:"id"`
}

type DeleteCategoryResponse struct{}

// Share is one participant's part of an expense.
type Share struct {
	ParticipantID   string `json:"participant_id"`
	ParticipantName string `json:"participant_name,omitempty"`
	Amount          Money  `json:"amount"`
}

type Expense struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	ItemName     string   `json:"item_name"`
	CategoryID   string   `json:"category_id,omitempty"`
	CategoryName string   `json:"category_name,omitempty"`
	Amount       Money    `json:"amount"`
	SharesTotal  Money    `json:"shares_total"`
	Note         string   `json:"note,omitempty"`
	PaidBy       string   `json:"paid_by,omitempty"`
	PaidByName   string   `json:"paid_by_name,omitempty"`
	Shares       []*Share `json:"shares"`
	CreatedAt    int64    `json:"created_at"`
	UpdatedAt    int64    `json:"updated_at"`
}

// ExpenseInput is shared by create and update. Set either SplitAmong for an
// equal split or Shares for explicit amounts, not both.
type ExpenseInput struct {
	Date       string   `json:"date"`
	Time       string   `json:"time,omitempty"`
	ItemName   string   `json:"item_name"`
	CategoryID string   `json:"category_id,omitempty"`
	Amount     Money    `json:"amount"`
	Note       string   `json:"note,omitempty"`
	PaidBy     string   `json:"paid_by,omitempty"`
	SplitAmong []string `json:"split_among,omitempty"`
	Shares     []*Share `json:"shares,omitempty"`
}

type CreateExpenseRequest struct {
	ExpenseInput
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type GetExpenseRequest struct {
	ID string `json:"id"`
}

type GetExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

// UpdateExpenseRequest replaces every field of the expense and all of its shares.
type UpdateExpenseRequest struct {
	ID string `json:"id"`
	ExpenseInput
}

type UpdateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

type ListExpensesRequest struct {
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
	Keyword    string `json:"keyword,omitempty"`
	SortBy     string `json:"sort_by,omitempty"`
	Page       int    `json:"page,omitempty"`
}

type ListExpensesResponse struct {
	Expenses  []*Expense `json:"expenses"`
	Total     int        `json:"total"`
	Page      int        `json:"page"`
	PageCount int        `json:"page_count"`
}

// GetStatisticsRequest selects a period. StartDate and EndDate only apply
// when Period is "all" or empty.
type GetStatisticsRequest struct {
	Period    string `json:"period,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type CategoryStat struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Total      Money   `json:"total"`
	Percentage float64 `json:"percentage"`
}

type GetStatisticsResponse struct {
	Period       string          `json:"period"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	TotalAmount  Money           `json:"total_amount"`
	ExpenseCount int             `json:"expense_count"`
	Categories   []*CategoryStat `json:"categories"`
}

type GetSettlementRequest struct{}

type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Money  `json:"amount"`
}

type Balance struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Paid          Money  `json:"paid"`
	Owed          Money  `json:"owed"`
	Balance       Money  `json:"balance"`
}

type GetSettlementResponse struct {
	Transfers []*Transfer `json:"transfers"`
	Balances  []*Balance  `json:"balances"`
}
