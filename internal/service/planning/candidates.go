package planning

import (
	"context"
	"sort"

	"github.com/krooster/krooster-backend-go/internal/domain/employee"
	"github.com/krooster/krooster-backend-go/internal/domain/planning"
	"github.com/krooster/krooster-backend-go/internal/domain/shift"
	"github.com/krooster/krooster-backend-go/internal/pkg/validator"
)

// candidateLookups caches per-restaurant employee pools and per-date busy and
// absent sets, so readjusting an absence spanning several days of the same
// week does not re-query the same data per shift.
type candidateLookups struct {
	svc   *Service
	pools map[int64][]employee.Employee
	busy  map[string]map[int64]bool
	away  map[string]map[int64]bool
}

func newCandidateLookups(svc *Service) *candidateLookups {
	return &candidateLookups{
		svc:   svc,
		pools: map[int64][]employee.Employee{},
		busy:  map[string]map[int64]bool{},
		away:  map[string]map[int64]bool{},
	}
}

func (l *candidateLookups) candidatesFor(ctx context.Context, sh shift.Shift, limit int) ([]planning.Candidate, error) {
	pool, ok := l.pools[sh.RestaurantID]
	if !ok {
		var err error
		pool, err = l.svc.employees.ListActiveByRestaurant(ctx, sh.RestaurantID)
		if err != nil {
			return nil, err
		}
		l.pools[sh.RestaurantID] = pool
	}

	dateKey := sh.Date.Format("2006-01-02")

	busy, ok := l.busy[dateKey]
	if !ok {
		ids, err := l.svc.shifts.ListBusyEmployeeIDs(ctx, sh.Date)
		if err != nil {
			return nil, err
		}
		busy = idSet(ids)
		l.busy[dateKey] = busy
	}

	away, ok := l.away[dateKey]
	if !ok {
		ids, err := l.svc.absences.ListApprovedEmployeeIDs(ctx, sh.Date)
		if err != nil {
			return nil, err
		}
		away = idSet(ids)
		l.away[dateKey] = away
	}

	return rankCandidates(pool, busy, away, validator.ISOWeekday(sh.Date), limit), nil
}

func idSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// rankCandidates filters the restaurant's pool down to employees free on the
// shift's date and orders them: seniors first, mobile before non-mobile, then
// employee id ascending to keep the result reproducible. The list is truncated
// to limit entries.
func rankCandidates(pool []employee.Employee, busy, away map[int64]bool, weekday int, limit int) []planning.Candidate {
	eligible := []employee.Employee{}
	for _, e := range pool {
		if busy[e.ID] || away[e.ID] || e.HasDayOff(weekday) {
			continue
		}
		eligible = append(eligible, e)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		si := eligible[i].Seniority == employee.SenioritySenior
		sj := eligible[j].Seniority == employee.SenioritySenior
		if si != sj {
			return si
		}
		if eligible[i].IsMobile != eligible[j].IsMobile {
			return eligible[i].IsMobile
		}
		return eligible[i].ID < eligible[j].ID
	})

	if len(eligible) > limit {
		eligible = eligible[:limit]
	}

	candidates := make([]planning.Candidate, 0, len(eligible))
	for _, e := range eligible {
		candidates = append(candidates, planning.Candidate{
			ID:             e.ID,
			Name:           e.FirstName,
			Seniority:      string(e.Seniority),
			IsMobile:       e.IsMobile,
			Positions:      e.Positions,
			PreferredShift: string(e.PreferredShift),
		})
	}

	return candidates
}
