package ratings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    Snapshot
	}{
		{"no reviews", nil, Snapshot{AvgRating: 0, ReviewCount: 0}},
		{"single review", []int{4}, Snapshot{AvgRating: 4, ReviewCount: 1}},
		{"average lands on a half", []int{4, 5}, Snapshot{AvgRating: 4.5, ReviewCount: 2}},
		{"all fives", []int{5, 5}, Snapshot{AvgRating: 5, ReviewCount: 2}},
		{"repeating decimal rounds", []int{5, 5, 4}, Snapshot{AvgRating: 4.7, ReviewCount: 3}},
		{"rounds down", []int{3, 3, 4}, Snapshot{AvgRating: 3.3, ReviewCount: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarize(tt.ratings))
		})
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.7, Round1(4.666666))
	assert.Equal(t, 4.2, Round1(4.249))
	assert.Equal(t, 4.3, Round1(4.25))
	assert.Equal(t, 0.0, Round1(0))
	assert.Equal(t, 5.0, Round1(5))
}
