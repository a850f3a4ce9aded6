package model

// DateLayout is the canonical form of a booking date. All scheduling
// logic compares dates as strings in this layout.
const DateLayout = "2006-01-02"

// These constants refer to the priorities supported for tasks.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// These constants refer to the statuses stored on a party booking.
// They are set at creation and never reconciled with the date; the
// list views derive their own "done" notion from the date instead.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
)

// Task is a single entry on the team's task board.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
	// DueDate is an ISO instant; empty means no due date.
	DueDate string `json:"dueDate,omitempty"`
}

// Party is a single booking. Date is a plain YYYY-MM-DD string and Time
// a plain HH:mm string; the two are never combined into one instant.
type Party struct {
	ID               string `json:"id"`
	ClientName       string `json:"clientName"`
	ClientPhone      string `json:"clientPhone"`
	BirthdayPerson   string `json:"birthdayPerson"`
	Age              int    `json:"age"`
	NumberOfChildren int    `json:"numberOfChildren"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	Theme            string `json:"theme"`
	Workshops        string `json:"workshops"`
	Observations     string `json:"observations"`
	Status           string `json:"status"`
}
