package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/krooster/krooster-backend-go/internal/domain/swap"
	"github.com/krooster/krooster-backend-go/internal/pkg/database"
)

type swapRepositoryImpl struct {
	db *database.DB
}

func NewSwapRepository(db *database.DB) swap.Repository {
	return &swapRepositoryImpl{db: db}
}

const swapColumns = `
	sr.id, sr.requester_shift_id, sr.target_shift_id, sr.status, sr.reason, sr.created_at,
	re.first_name || ' ' || re.last_name,
	te.first_name || ' ' || te.last_name,
	rs.date, ts.date,
	rs.start_time || '-' || rs.end_time,
	ts.start_time || '-' || ts.end_time
`

// A referenced shift or employee may have been deleted since the request was
// filed; the request still resolves with those fields left null.
const swapJoins = `
	FROM swap_requests sr
	LEFT JOIN shifts rs ON sr.requester_shift_id = rs.id
	LEFT JOIN shifts ts ON sr.target_shift_id = ts.id
	LEFT JOIN employees re ON rs.employee_id = re.id
	LEFT JOIN employees te ON ts.employee_id = te.id
`

func scanSwap(row pgx.Row) (swap.SwapRequest, error) {
	var sr swap.SwapRequest
	err := row.Scan(
		&sr.ID,
		&sr.RequesterShiftID,
		&sr.TargetShiftID,
		&sr.Status,
		&sr.Reason,
		&sr.CreatedAt,
		&sr.RequesterName,
		&sr.TargetName,
		&sr.RequesterDate,
		&sr.TargetDate,
		&sr.RequesterTimes,
		&sr.TargetTimes,
	)
	if err != nil {
		return swap.SwapRequest{}, err
	}
	return sr, nil
}

// GetDetails implements swap.Repository.
func (r *swapRepositoryImpl) GetDetails(ctx context.Context, id int64) (swap.SwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + swapColumns + swapJoins + ` WHERE sr.id = $1`

	sr, err := scanSwap(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return swap.SwapRequest{}, swap.ErrSwapNotFound
		}
		return swap.SwapRequest{}, err
	}

	return sr, nil
}

// ListPending implements swap.Repository.
func (r *swapRepositoryImpl) ListPending(ctx context.Context) ([]swap.SwapRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + swapColumns + swapJoins + ` WHERE sr.status = 'pending' ORDER BY sr.created_at, sr.id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []swap.SwapRequest
	for rows.Next() {
		sr, err := scanSwap(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, sr)
	}

	return requests, rows.Err()
}
