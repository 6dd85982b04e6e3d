// Package rating computes a campground's displayed score from its reviews.
package rating

import "yelpcamp/pkg/domain"

// Average returns the unweighted arithmetic mean of the review ratings, or 0
// when there are no reviews. The result does not depend on review order.
func Average(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	return float64(sum) / float64(len(reviews))
}
