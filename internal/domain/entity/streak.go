package entity

// Streak is the singleton logging-streak record.
// Count is the number of consecutive days with at least one dashboard visit;
// LastDate is the ISO date of the most recent counted day, empty before the
// first check-in.
type Streak struct {
	Count    int    `json:"count"`
	LastDate string `json:"lastDate"`
}

// DailyInsight is the deterministic daily content bundle shown on the
// dashboard. It is a pure function of the calendar date, never persisted.
type DailyInsight struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Tip    string `json:"tip"`
	Focus  string `json:"focus"`
}
