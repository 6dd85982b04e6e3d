package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	usersTable     = "users"
	followersTable = "followers"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapWriteErr(err, "could not store user into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.Func("LOWER", goqu.I("username")).Eq(strings.ToLower(username)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.Func("LOWER", goqu.I("email")).Eq(strings.ToLower(email)))
}

// UserByResetToken returns the holder of token only while the token is live.
func (p *PgSQL) UserByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	return p.userWhere(ctx,
		goqu.I("reset_token").Eq(token),
		goqu.I("reset_token_expires_at").Gt(now),
	)
}

func (p *PgSQL) userWhere(ctx context.Context, where ...exp.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateUser applies the provided fields and sets updated_at. Clearing the
// reset token also clears its expiry. With WhileResetToken set, the row only
// matches while that token is live, so concurrent consumers of one token can
// not both succeed.
func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.PasswordHash != nil {
		rec["password_hash"] = *updates.PasswordHash
	}
	if updates.ResetToken != nil {
		if *updates.ResetToken == "" {
			rec["reset_token"] = goqu.L("NULL")
			rec["reset_token_expires_at"] = goqu.L("NULL")
		} else {
			rec["reset_token"] = *updates.ResetToken
			if updates.ResetTokenExpiresAt != nil {
				rec["reset_token_expires_at"] = *updates.ResetTokenExpiresAt
			}
		}
	}

	where := []exp.Expression{goqu.I("id").Eq(uuid.UUID(id))}
	if updates.WhileResetToken != nil {
		where = append(where,
			goqu.I("reset_token").Eq(*updates.WhileResetToken),
			goqu.I("reset_token_expires_at").Gt(updates.ResetTokenLiveAt))
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(where...).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapWriteErr(err, "could not update user in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AddFollower(ctx context.Context, userID domain.UserID, followerID domain.UserID) error {
	_, err := p.Builder.Insert(followersTable).
		Rows(goqu.Record{
			"user_id":     uuid.UUID(userID),
			"follower_id": uuid.UUID(followerID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not add follower in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) RemoveFollower(ctx context.Context, userID domain.UserID, followerID domain.UserID) error {
	_, err := p.Builder.Delete(followersTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("follower_id").Eq(uuid.UUID(followerID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not remove follower in pg: %w", err)
	}

	return nil
}

// Followers returns the users following userID, oldest follow first.
func (p *PgSQL) Followers(ctx context.Context, userID domain.UserID) ([]domain.User, error) {
	var rows []PgUser
	err := p.Builder.From(goqu.T(usersTable).As("u")).
		Select(goqu.I("u.*")).
		Join(goqu.T(followersTable).As("f"), goqu.On(goqu.I("f.follower_id").Eq(goqu.I("u.id")))).
		Where(goqu.I("f.user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("f.created_at").Asc(), goqu.I("u.id").Asc()).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch followers from pg: %w", err)
	}

	return pgUsersToDomain(rows), nil
}
