package get_lunar

import "github.com/m04kA/SMC-WeddingBooking/pkg/lunar"

// LunarResponse HTTP response model
type LunarResponse struct {
	SolarDate   string          `json:"solarDate"` // dd/mm/yyyy
	Weekday     string          `json:"weekday"`
	Lunar       lunar.LunarDate `json:"lunar"`
	LunarText   string          `json:"lunarText"`
	DisplayDate string          `json:"displayDate"`
}
