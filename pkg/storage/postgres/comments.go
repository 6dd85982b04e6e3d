package postgres

import (
	"context"
	"fmt"

	"yelpcamp/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	commentsTable = "comments"
)

func (p *PgSQL) StoreComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	var row PgComment
	row.FromDomain(comment)

	var stored PgComment
	if _, err := p.Builder.Insert(commentsTable).
		Rows(row).
		Returning(&PgComment{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapWriteErr(err, "could not store comment into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) CommentByID(ctx context.Context, id domain.CommentID) (*domain.Comment, error) {
	var row PgComment
	found, err := p.Builder.From(commentsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch comment by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CampgroundComments(ctx context.Context, campgroundID domain.CampgroundID) ([]domain.Comment, error) {
	var rows []PgComment
	if err := p.Builder.From(commentsTable).
		Where(goqu.I("campground_id").Eq(uuid.UUID(campgroundID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch campground comments from pg: %w", err)
	}

	return pgCommentsToDomain(rows), nil
}

func (p *PgSQL) UpdateComment(ctx context.Context, id domain.CommentID, text string) (*domain.Comment, error) {
	var row PgComment
	found, err := p.Builder.Update(commentsTable).
		Set(goqu.Record{
			"text":       text,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgComment{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update comment in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteComment(ctx context.Context, id domain.CommentID) (*domain.Comment, error) {
	var row PgComment
	found, err := p.Builder.Delete(commentsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgComment{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete comment in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
