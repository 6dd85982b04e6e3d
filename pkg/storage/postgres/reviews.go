package postgres

import (
	"context"
	"fmt"

	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	reviewsTable = "reviews"
)

// StoreReview inserts a review. The (campground_id, author_id) unique index
// turns a concurrent second review into storage.ErrDuplicate.
func (p *PgSQL) StoreReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	var row PgReview
	row.FromDomain(review)

	var stored PgReview
	if _, err := p.Builder.Insert(reviewsTable).
		Rows(row).
		Returning(&PgReview{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapWriteErr(err, "could not store review into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ReviewByID(ctx context.Context, id domain.ReviewID) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.From(reviewsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch review by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ReviewByAuthor(ctx context.Context,
	campgroundID domain.CampgroundID,
	authorID domain.UserID) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.From(reviewsTable).
		Where(
			goqu.I("campground_id").Eq(uuid.UUID(campgroundID)),
			goqu.I("author_id").Eq(uuid.UUID(authorID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch review by author: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CampgroundReviews(ctx context.Context, campgroundID domain.CampgroundID) ([]domain.Review, error) {
	var rows []PgReview
	if err := p.Builder.From(reviewsTable).
		Where(goqu.I("campground_id").Eq(uuid.UUID(campgroundID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch campground reviews from pg: %w", err)
	}

	return pgReviewsToDomain(rows), nil
}

func (p *PgSQL) UpdateReview(ctx context.Context, id domain.ReviewID, updates storage.ReviewUpdates) (*domain.Review, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	setIf(rec, "rating", updates.Rating)
	setIf(rec, "text", updates.Text)

	var row PgReview
	found, err := p.Builder.Update(reviewsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgReview{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update review in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteReview(ctx context.Context, id domain.ReviewID) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.Delete(reviewsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgReview{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete review in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
