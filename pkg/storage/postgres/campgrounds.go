package postgres

import (
	"context"
	"fmt"

	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	campgroundsTable = "campgrounds"
)

func (p *PgSQL) StoreCampground(ctx context.Context, campground domain.Campground) (*domain.Campground, error) {
	var row PgCampground
	row.FromDomain(campground)

	var stored PgCampground
	if _, err := p.Builder.Insert(campgroundsTable).
		Rows(row).
		Returning(&PgCampground{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapWriteErr(err, "could not store campground into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) CampgroundByID(ctx context.Context, id domain.CampgroundID) (*domain.Campground, error) {
	var row PgCampground
	found, err := p.Builder.From(campgroundsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch campground by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateCampground updates the provided fields only; author columns are never touched.
func (p *PgSQL) UpdateCampground(ctx context.Context,
	id domain.CampgroundID,
	updates storage.CampgroundUpdates) (*domain.Campground, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	setIf(rec, "name", updates.Name)
	setIf(rec, "image", updates.Image)
	setIf(rec, "description", updates.Description)
	setIf(rec, "price", updates.Price)
	setIf(rec, "location", updates.Location)
	setIf(rec, "location_query", updates.LocationQuery)
	setIf(rec, "lat", updates.Lat)
	setIf(rec, "lng", updates.Lng)
	setIf(rec, "rating", updates.Rating)

	var row PgCampground
	found, err := p.Builder.Update(campgroundsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgCampground{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update campground in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteCampground removes the campground; comments, reviews and notifications
// go with it through ON DELETE CASCADE.
func (p *PgSQL) DeleteCampground(ctx context.Context, id domain.CampgroundID) (*domain.Campground, error) {
	var row PgCampground
	found, err := p.Builder.Delete(campgroundsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgCampground{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete campground in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Campgrounds returns campgrounds positioned after the optional cursor, limited by limit.
// Results are ordered by created_at DESC, id DESC; the cursor compares both
// columns so rows sharing a creation time are never skipped.
func (p *PgSQL) Campgrounds(ctx context.Context,
	cursor storage.CampgroundCursor,
	limit uint) (storage.CampgroundPage, error) {
	if limit == 0 {
		return storage.CampgroundPage{}, nil
	}

	var w []exp.Expression
	if !cursor.IsZero() {
		w = append(w, goqu.L("(created_at, id) < (?, ?)", cursor.CreatedAt, uuid.UUID(cursor.ID)))
	}

	// fetch one extra to determine if there is a next page
	var rows []PgCampground
	if err := p.Builder.From(campgroundsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.CampgroundPage{}, fmt.Errorf("could not fetch campgrounds from pg: %w", err)
	}

	var nextCursor *storage.CampgroundCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		nextCursor = &storage.CampgroundCursor{CreatedAt: last.CreatedAt, ID: domain.CampgroundID(last.ID)}
	}

	return storage.CampgroundPage{
		Campgrounds: pgCampgroundsToDomain(rows),
		NextCursor:  nextCursor,
	}, nil
}

func (p *PgSQL) CampgroundsByAuthor(ctx context.Context, authorID domain.UserID) ([]domain.Campground, error) {
	var rows []PgCampground
	if err := p.Builder.From(campgroundsTable).
		Where(goqu.I("author_id").Eq(uuid.UUID(authorID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch author campgrounds from pg: %w", err)
	}

	return pgCampgroundsToDomain(rows), nil
}

func setIf[T any](rec goqu.Record, column string, value *T) {
	if value != nil {
		rec[column] = *value
	}
}
