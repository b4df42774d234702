package ratings

import (
	"context"
	"math"

	"lokal/internal/infra/dbx"
)

// Snapshot is a business's derived rating state, recomputed from the approved
// review set rather than maintained incrementally, so it self-heals from any
// drift.
type Snapshot struct {
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}

// Round1 rounds to one decimal place, the precision the snapshot is stored at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// summarize derives a snapshot from a set of ratings. Empty set yields a zero
// average, not NaN. It mirrors the SQL aggregation in Recompute and anchors
// the rounding behavior in tests.
func summarize(ratingValues []int) Snapshot {
	if len(ratingValues) == 0 {
		return Snapshot{}
	}

	sum := 0
	for _, v := range ratingValues {
		sum += v
	}

	return Snapshot{
		AvgRating:   Round1(float64(sum) / float64(len(ratingValues))),
		ReviewCount: len(ratingValues),
	}
}

// Recompute reads the business's approved reviews and overwrites its stored
// snapshot in a single update. It is the only writer of these columns, and is
// called inside the same transaction as the review mutation that triggered
// it, so the snapshot can never lag the approved set.
func Recompute(ctx context.Context, q dbx.Querier, businessID int64) (Snapshot, error) {
	query := `
        SELECT COUNT(id), COALESCE(AVG(rating), 0)
        FROM reviews
        WHERE business_id = $1 AND status = 'approved'
    `

	var snap Snapshot
	var avg float64
	if err := q.QueryRow(ctx, query, businessID).Scan(&snap.ReviewCount, &avg); err != nil {
		return Snapshot{}, err
	}
	snap.AvgRating = Round1(avg)

	_, err := q.Exec(ctx,
		`UPDATE businesses SET avg_rating = $2, review_count = $3 WHERE id = $1`,
		businessID, snap.AvgRating, snap.ReviewCount,
	)
	if err != nil {
		return Snapshot{}, err
	}

	return snap, nil
}
