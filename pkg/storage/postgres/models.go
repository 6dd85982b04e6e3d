package postgres

import (
	"database/sql"
	"time"

	"yelpcamp/pkg/domain"

	"github.com/google/uuid"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

type PgUser struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	Username     string    `db:"username"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	Avatar       string    `db:"avatar"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`

	ResetToken          sql.NullString `db:"reset_token"`
	ResetTokenExpiresAt sql.NullTime   `db:"reset_token_expires_at"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:                  domain.UserID(p.ID),
		Username:            p.Username,
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		Email:               p.Email,
		Avatar:              p.Avatar,
		PasswordHash:        p.PasswordHash,
		IsAdmin:             p.IsAdmin,
		ResetToken:          p.ResetToken.String,
		ResetTokenExpiresAt: p.ResetTokenExpiresAt.Time,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:                  uuid.UUID(user.ID),
		Username:            user.Username,
		FirstName:           user.FirstName,
		LastName:            user.LastName,
		Email:               user.Email,
		Avatar:              user.Avatar,
		PasswordHash:        user.PasswordHash,
		IsAdmin:             user.IsAdmin,
		ResetToken:          nullString(user.ResetToken),
		ResetTokenExpiresAt: nullTime(user.ResetTokenExpiresAt),
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           nullTime(user.UpdatedAt),
	}
}

func pgUsersToDomain(users []PgUser) []domain.User {
	out := make([]domain.User, 0, len(users))
	for i := range users {
		out = append(out, *users[i].ToDomain())
	}

	return out
}

type PgCampground struct {
	ID            uuid.UUID `db:"id"             goqu:"skipinsert"`
	Name          string    `db:"name"`
	Image         string    `db:"image"`
	Description   string    `db:"description"`
	Price         string    `db:"price"`
	Location      string    `db:"location"`
	LocationQuery string    `db:"location_query"`
	Lat           float64   `db:"lat"`
	Lng           float64   `db:"lng"`

	AuthorID       uuid.UUID `db:"author_id"`
	AuthorUsername string    `db:"author_username"`

	Rating float64 `db:"rating" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgCampground) ToDomain() *domain.Campground {
	return &domain.Campground{
		ID:            domain.CampgroundID(p.ID),
		Name:          p.Name,
		Image:         p.Image,
		Description:   p.Description,
		Price:         p.Price,
		Location:      p.Location,
		LocationQuery: p.LocationQuery,
		Lat:           p.Lat,
		Lng:           p.Lng,
		Author: domain.AuthorRef{
			ID:       domain.UserID(p.AuthorID),
			Username: p.AuthorUsername,
		},
		Rating:    p.Rating,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgCampground) FromDomain(c domain.Campground) {
	*p = PgCampground{
		ID:             uuid.UUID(c.ID),
		Name:           c.Name,
		Image:          c.Image,
		Description:    c.Description,
		Price:          c.Price,
		Location:       c.Location,
		LocationQuery:  c.LocationQuery,
		Lat:            c.Lat,
		Lng:            c.Lng,
		AuthorID:       uuid.UUID(c.Author.ID),
		AuthorUsername: c.Author.Username,
		Rating:         c.Rating,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      nullTime(c.UpdatedAt),
	}
}

func pgCampgroundsToDomain(rows []PgCampground) []domain.Campground {
	out := make([]domain.Campground, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgReview struct {
	ID             uuid.UUID    `db:"id"              goqu:"skipinsert"`
	CampgroundID   uuid.UUID    `db:"campground_id"`
	AuthorID       uuid.UUID    `db:"author_id"`
	AuthorUsername string       `db:"author_username"`
	Rating         int          `db:"rating"`
	Text           string       `db:"text"`
	CreatedAt      time.Time    `db:"created_at"      goqu:"skipinsert"`
	UpdatedAt      sql.NullTime `db:"updated_at"      goqu:"skipinsert"`
}

func (p *PgReview) ToDomain() *domain.Review {
	return &domain.Review{
		ID:           domain.ReviewID(p.ID),
		CampgroundID: domain.CampgroundID(p.CampgroundID),
		Author: domain.AuthorRef{
			ID:       domain.UserID(p.AuthorID),
			Username: p.AuthorUsername,
		},
		Rating:    p.Rating,
		Text:      p.Text,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgReview) FromDomain(r domain.Review) {
	*p = PgReview{
		ID:             uuid.UUID(r.ID),
		CampgroundID:   uuid.UUID(r.CampgroundID),
		AuthorID:       uuid.UUID(r.Author.ID),
		AuthorUsername: r.Author.Username,
		Rating:         r.Rating,
		Text:           r.Text,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      nullTime(r.UpdatedAt),
	}
}

func pgReviewsToDomain(rows []PgReview) []domain.Review {
	out := make([]domain.Review, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgComment struct {
	ID             uuid.UUID    `db:"id"              goqu:"skipinsert"`
	CampgroundID   uuid.UUID    `db:"campground_id"`
	AuthorID       uuid.UUID    `db:"author_id"`
	AuthorUsername string       `db:"author_username"`
	Text           string       `db:"text"`
	CreatedAt      time.Time    `db:"created_at"      goqu:"skipinsert"`
	UpdatedAt      sql.NullTime `db:"updated_at"      goqu:"skipinsert"`
}

func (p *PgComment) ToDomain() *domain.Comment {
	return &domain.Comment{
		ID:           domain.CommentID(p.ID),
		CampgroundID: domain.CampgroundID(p.CampgroundID),
		Author: domain.AuthorRef{
			ID:       domain.UserID(p.AuthorID),
			Username: p.AuthorUsername,
		},
		Text:      p.Text,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgComment) FromDomain(c domain.Comment) {
	*p = PgComment{
		ID:             uuid.UUID(c.ID),
		CampgroundID:   uuid.UUID(c.CampgroundID),
		AuthorID:       uuid.UUID(c.Author.ID),
		AuthorUsername: c.Author.Username,
		Text:           c.Text,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      nullTime(c.UpdatedAt),
	}
}

func pgCommentsToDomain(rows []PgComment) []domain.Comment {
	out := make([]domain.Comment, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgNotification struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	UserID       uuid.UUID `db:"user_id"`
	Username     string    `db:"username"`
	CampgroundID uuid.UUID `db:"campground_id"`
	IsRead       bool      `db:"is_read"`
	CreatedAt    time.Time `db:"created_at"    goqu:"skipinsert"`
}

func (p *PgNotification) ToDomain() *domain.Notification {
	return &domain.Notification{
		ID:           domain.NotificationID(p.ID),
		UserID:       domain.UserID(p.UserID),
		Username:     p.Username,
		CampgroundID: domain.CampgroundID(p.CampgroundID),
		IsRead:       p.IsRead,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgNotification) FromDomain(n domain.Notification) {
	*p = PgNotification{
		ID:           uuid.UUID(n.ID),
		UserID:       uuid.UUID(n.UserID),
		Username:     n.Username,
		CampgroundID: uuid.UUID(n.CampgroundID),
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt,
	}
}

func pgNotificationsToDomain(rows []PgNotification) []domain.Notification {
	out := make([]domain.Notification, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
