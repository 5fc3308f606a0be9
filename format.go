package dealerscout

import (
	"fmt"
	"strings"
	"time"
)

// weekdayNames lists days in provider order (weekday text starts on Monday).
var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayHours is one display row of a business-hours table.
type DayHours struct {
	Day   string
	Hours string
	Today bool
}

// FormatBusinessHours shapes provider weekday text (lines like
// "Monday: 9:00 AM – 6:00 PM") into display rows, one per day of the week.
// Days missing from the input render as "Closed". The row matching today
// is flagged so renderers can highlight it.
func FormatBusinessHours(weekdayText []string, today time.Weekday) []DayHours {
	rows := make([]DayHours, 0, len(weekdayNames))
	for i, day := range weekdayNames {
		hours := "Closed"
		for _, line := range weekdayText {
			if strings.HasPrefix(line, day+":") {
				hours = strings.TrimSpace(strings.TrimPrefix(line, day+":"))
				break
			}
		}
		// weekdayNames[0] is Monday; time.Monday == 1.
		rows = append(rows, DayHours{
			Day:   day,
			Hours: hours,
			Today: time.Weekday((i+1)%7) == today,
		})
	}
	return rows
}

// FormatRating renders a numeric rating and review count as a five-star
// string, e.g. "★★★★☆ 4.3 (120 reviews)". A fractional part of 0.5 or more
// rounds up to the next star. Businesses without reviews render as
// "No ratings yet".
func FormatRating(rating float64, reviews int) string {
	if reviews <= 0 || rating <= 0 {
		return "No ratings yet"
	}

	filled := int(rating)
	if rating-float64(filled) >= 0.5 {
		filled++
	}
	if filled > 5 {
		filled = 5
	}

	stars := strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
	noun := "reviews"
	if reviews == 1 {
		noun = "review"
	}
	return fmt.Sprintf("%s %.1f (%d %s)", stars, rating, reviews, noun)
}
