package dto

// AvailabilityQuery selects the calendar window. Start defaults to
// today and Days to the configured window when omitted.
type AvailabilityQuery struct {
	Start    string `form:"start"`
	Days     int    `form:"days" binding:"omitempty,min=1,max=60"`
	Location string `form:"location"`
}

type SlotStates struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
	Day       bool `json:"day"`
}

// DayAvailability is the per-day display state. Selected is the single
// value shown in the coach edit view, chosen with priority
// day > morning > afternoon > none.
type DayAvailability struct {
	Date     string     `json:"date"`
	Slots    SlotStates `json:"slots"`
	Selected string     `json:"selected"`
}

// UpsertAvailabilityRequest maps ISO dates to the chosen slot for each
// day of the window. A missing date or the value "none" clears the
// selection for that day.
type UpsertAvailabilityRequest struct {
	Location   string            `json:"location" binding:"required"`
	Selections map[string]string `json:"selections" binding:"required"`
}
