package planning

import (
	"fmt"
	"sort"

	"github.com/krooster/krooster-backend-go/internal/config"
	"github.com/krooster/krooster-backend-go/internal/domain/employee"
	"github.com/krooster/krooster-backend-go/internal/domain/planning"
	"github.com/krooster/krooster-backend-go/internal/domain/shift"
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
)

const (
	shiftTypeMorning   = "morning"
	shiftTypeAfternoon = "afternoon"
)

type bucketKey struct {
	date         string
	restaurantID int64
}

// bucket holds the shifts of one (date, restaurant) pair split by shift type,
// each joined with its employee record when the id resolves.
type bucket struct {
	morning   []bucketedShift
	afternoon []bucketedShift
}

type bucketedShift struct {
	input shift.Input
	emp   employee.Employee
	known bool
}

// Evaluate checks a proposed schedule against the staffing rules and returns
// every violation found. Rule violations are data, never errors: malformed
// shifts are skipped for the specific check they break and evaluation always
// runs to completion.
func Evaluate(shifts []shift.Input, snapshot planning.Context, rules config.RulesConfig) planning.ValidationResult {
	issues := []string{}
	warnings := []string{}

	employeesByID := make(map[int64]employee.Employee, len(snapshot.Employees))
	for _, e := range snapshot.Employees {
		employeesByID[e.ID] = e
	}
	restaurantNames := make(map[int64]string, len(snapshot.Restaurants))
	for _, r := range snapshot.Restaurants {
		restaurantNames[r.ID] = r.Name
	}
	restaurantName := func(id int64) string {
		if name, ok := restaurantNames[id]; ok {
			return name
		}
		return fmt.Sprintf("Restaurant %d", id)
	}

	// Group shifts by (date, restaurant), then morning vs afternoon by start
	// hour. Buckets are created explicitly so an empty counterpart type is
	// still checked for coverage.
	buckets := make(map[bucketKey]*bucket)
	keys := []bucketKey{}
	for _, in := range shifts {
		startTime := in.StartTime
		if startTime == "" {
			startTime = "00:00"
		}
		hour, _, ok := validator.ParseClock(startTime)
		if !ok {
			continue
		}

		key := bucketKey{date: in.Date, restaurantID: in.RestaurantID}
		b, exists := buckets[key]
		if !exists {
			b = &bucket{}
			buckets[key] = b
			keys = append(keys, key)
		}

		emp, known := employeesByID[in.EmployeeID]
		bs := bucketedShift{input: in, emp: emp, known: known}
		if hour < rules.MorningCutoffHour {
			b.morning = append(b.morning, bs)
		} else {
			b.afternoon = append(b.afternoon, bs)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].restaurantID < keys[j].restaurantID
	})

	for _, key := range keys {
		b := buckets[key]
		restName := restaurantName(key.restaurantID)

		for _, st := range []struct {
			name   string
			shifts []bucketedShift
		}{
			{shiftTypeMorning, b.morning},
			{shiftTypeAfternoon, b.afternoon},
		} {
			if len(st.shifts) == 0 {
				issues = append(issues, fmt.Sprintf("%s %s: No %s shift coverage!", key.date, restName, st.name))
				continue
			}

			seniors := 0
			hasKitchen := false
			hasCashier := false
			for _, bs := range st.shifts {
				if bs.emp.Seniority == employee.SenioritySenior {
					seniors++
				}
				if bs.emp.HasPosition("kitchen") {
					hasKitchen = true
				}
				if bs.emp.HasPosition("cashier") {
					hasCashier = true
				}
			}

			if seniors < 1 {
				issues = append(issues, fmt.Sprintf("%s %s %s: No senior employee!", key.date, restName, st.name))
			} else if st.name == shiftTypeAfternoon && seniors < rules.WeekendMinSeniors {
				// Weekend dinner staffing is a recommendation, not a rule.
				// An unparsable date skips only this check.
				if d, ok := validator.IsValidDate(key.date); ok && validator.ISOWeekday(d) >= 4 {
					warnings = append(warnings, fmt.Sprintf("%s %s dinner: Only %d senior (recommend %d on weekends)",
						key.date, restName, seniors, rules.WeekendMinSeniors))
				}
			}

			if !hasKitchen {
				issues = append(issues, fmt.Sprintf("%s %s %s: No kitchen staff!", key.date, restName, st.name))
			}
			if !hasCashier {
				issues = append(issues, fmt.Sprintf("%s %s %s: No cashier!", key.date, restName, st.name))
			}
		}
	}

	// Per-employee checks: day-off conflicts and accumulated hours.
	type dayOffHit struct {
		date       string
		employeeID int64
		message    string
	}
	dayOffHits := []dayOffHit{}

	hoursByEmployee := map[int64]float64{}
	employeeOrder := []int64{}
	datesSeen := map[string]struct{}{}

	for _, in := range shifts {
		emp, known := employeesByID[in.EmployeeID]
		datesSeen[in.Date] = struct{}{}

		if known && len(emp.DaysOff) > 0 {
			if d, ok := validator.IsValidDate(in.Date); ok && emp.HasDayOff(validator.ISOWeekday(d)) {
				dayOffHits = append(dayOffHits, dayOffHit{
					date:       in.Date,
					employeeID: in.EmployeeID,
					message:    fmt.Sprintf("%s: %s scheduled on day off!", in.Date, emp.FirstName),
				})
			}
		}

		startTime := in.StartTime
		if startTime == "" {
			startTime = "00:00"
		}
		endTime := in.EndTime
		if endTime == "" {
			endTime = "00:00"
		}
		startMin, okStart := validator.ClockMinutes(startTime)
		endMin, okEnd := validator.ClockMinutes(endTime)
		if !okStart || !okEnd {
			continue
		}

		hours := float64(endMin-startMin) / 60
		if hours < 0 {
			hours += 24 // overnight shift
		}
		if _, tracked := hoursByEmployee[in.EmployeeID]; !tracked {
			employeeOrder = append(employeeOrder, in.EmployeeID)
		}
		hoursByEmployee[in.EmployeeID] += hours
	}

	sort.SliceStable(dayOffHits, func(i, j int) bool {
		if dayOffHits[i].date != dayOffHits[j].date {
			return dayOffHits[i].date < dayOffHits[j].date
		}
		return dayOffHits[i].employeeID < dayOffHits[j].employeeID
	})
	for _, hit := range dayOffHits {
		issues = append(issues, hit.message)
	}

	for _, id := range employeeOrder {
		emp, known := employeesByID[id]
		if !known || emp.EmploymentType != employee.EmploymentTypeFullTime {
			continue
		}
		hours := hoursByEmployee[id]
		if hours < float64(rules.WeeklyHoursMin) {
			warnings = append(warnings, fmt.Sprintf("%s: Only %.1fh scheduled (target %dh)",
				emp.FirstName, hours, rules.WeeklyHoursTarget))
		} else if hours > float64(rules.WeeklyHoursMax) {
			warnings = append(warnings, fmt.Sprintf("%s: %.1fh scheduled (over %dh limit)",
				emp.FirstName, hours, rules.WeeklyHoursTarget))
		}
	}

	return planning.ValidationResult{
		Valid:    len(issues) == 0,
		Issues:   issues,
		Warnings: warnings,
		Stats: planning.Stats{
			TotalShifts:        len(shifts),
			EmployeesScheduled: len(hoursByEmployee),
			DaysCovered:        len(datesSeen),
		},
	}
}
