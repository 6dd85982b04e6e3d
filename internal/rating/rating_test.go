package rating_test

import (
	"testing"

	"yelpcamp/internal/rating"
	"yelpcamp/pkg/domain"

	"github.com/stretchr/testify/require"
)

func reviews(scores ...int) []domain.Review {
	out := make([]domain.Review, 0, len(scores))
	for _, s := range scores {
		out = append(out, domain.Review{Rating: s})
	}

	return out
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		reviews []domain.Review
		want    float64
	}{
		{name: "no reviews", reviews: nil, want: 0},
		{name: "empty slice", reviews: []domain.Review{}, want: 0},
		{name: "single review", reviews: reviews(4), want: 4},
		{name: "three and five", reviews: reviews(3, 5), want: 4},
		{name: "fractional mean", reviews: reviews(1, 2), want: 1.5},
		{name: "all bounds", reviews: reviews(1, 5, 5, 1), want: 3},
		{name: "thirds", reviews: reviews(5, 4, 4), want: 13.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, rating.Average(tt.reviews), 1e-9)
		})
	}
}

func TestAverage_OrderIndependent(t *testing.T) {
	a := rating.Average(reviews(1, 2, 3, 4, 5, 5))
	b := rating.Average(reviews(5, 4, 5, 3, 1, 2))
	require.InDelta(t, a, b, 1e-12)
}

func TestAverage_AfterDeletingReview(t *testing.T) {
	set := reviews(3, 5)
	require.InDelta(t, 4.0, rating.Average(set), 1e-9)

	// drop the five
	require.InDelta(t, 3.0, rating.Average(set[:1]), 1e-9)
}
