package postgres

import (
	"context"
	"fmt"

	"yelpcamp/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	notificationsTable = "notifications"
)

func (p *PgSQL) StoreNotification(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	var row PgNotification
	row.FromDomain(n)

	var stored PgNotification
	if _, err := p.Builder.Insert(notificationsTable).
		Rows(row).
		Returning(&PgNotification{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapWriteErr(err, "could not store notification into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UnreadNotifications(ctx context.Context, userID domain.UserID) ([]domain.Notification, error) {
	var rows []PgNotification
	if err := p.Builder.From(notificationsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("is_read").IsFalse(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch unread notifications from pg: %w", err)
	}

	return pgNotificationsToDomain(rows), nil
}

// MarkNotificationRead only matches notifications owned by userID.
func (p *PgSQL) MarkNotificationRead(ctx context.Context,
	userID domain.UserID,
	id domain.NotificationID) (*domain.Notification, error) {
	var row PgNotification
	found, err := p.Builder.Update(notificationsTable).
		Set(goqu.Record{"is_read": true}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgNotification{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not mark notification read in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
