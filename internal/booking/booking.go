// Package booking holds the pure date-window math behind rental scheduling.
// Everything here works on explicit values; persistence and locking live in
// the service and repository layers.
package booking

import (
	"sort"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
)

// DefaultBufferDays is the mandatory turnaround gap between two rentals of
// the same garment (cleaning and inspection time).
const DefaultBufferDays = 2

// Window is an inclusive date range. Start and End are calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow is the candidate window of a requested rental: delivery day
// through delivery+days.
func NewWindow(delivery time.Time, daysOfRent int) Window {
	delivery = Day(delivery)
	return Window{Start: delivery, End: delivery.AddDate(0, 0, daysOfRent)}
}

// Padded expands the window by buffer days on both ends.
func (w Window) Padded(bufferDays int) Window {
	return Window{
		Start: w.Start.AddDate(0, 0, -bufferDays),
		End:   w.End.AddDate(0, 0, bufferDays),
	}
}

// Overlaps reports whether two inclusive windows share at least one day.
func (w Window) Overlaps(o Window) bool {
	return !w.Start.After(o.End) && !w.End.Before(o.Start)
}

// Days expands the window day by day.
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// RentWindow is the unavailable window a rent projects on its garment:
// delivery through return, padded by the buffer on both ends.
func RentWindow(r domain.Rent, bufferDays int) Window {
	return Window{Start: Day(r.DeliveryDate), End: Day(r.ReturnDate)}.Padded(bufferDays)
}

// Conflicts reports whether a candidate rental of the garment collides with
// any of the given rents. Canceled rents and rents of the excluded order are
// ignored. The boundary is inclusive: a gap of exactly bufferDays between
// windows is a conflict.
func Conflicts(delivery time.Time, daysOfRent int, rents []domain.Rent, bufferDays int, excludeOrderID int64) bool {
	candidate := NewWindow(delivery, daysOfRent)
	for _, r := range rents {
		if r.Status == domain.RentStatusCanceled {
			continue
		}
		if excludeOrderID != 0 && r.OrderID == excludeOrderID {
			continue
		}
		if candidate.Overlaps(RentWindow(r, bufferDays)) {
			return true
		}
	}
	return false
}

// UnavailableDays is the sorted, de-duplicated union of every non-canceled
// rent's unavailable window, expanded day by day. It feeds the booking
// calendar.
func UnavailableDays(rents []domain.Rent, bufferDays int) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, r := range rents {
		if r.Status == domain.RentStatusCanceled {
			continue
		}
		for _, d := range RentWindow(r, bufferDays).Days() {
			seen[d] = struct{}{}
		}
	}
	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Day truncates a timestamp to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ReturnDate is the day a rental delivered on delivery comes back.
func ReturnDate(delivery time.Time, daysOfRent int) time.Time {
	return Day(delivery).AddDate(0, 0, daysOfRent)
}
