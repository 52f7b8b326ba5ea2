package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/apikit/apierror"
	"github.com/dmitrymomot/apikit/patch"
	"github.com/dmitrymomot/apikit/pkg/pg"
	"github.com/dmitrymomot/apikit/pkg/validator"
)

// User is both the stored record and the success wire body.
type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          *string   `db:"email" json:"email"`
	Name           string    `db:"name" json:"name"`
	Bio            *string   `db:"bio" json:"bio"`
	MarketingOptIn bool      `db:"marketing_opt_in" json:"marketing_opt_in"`
}

// UserRef identifies the record an error occurrence is about.
type UserRef struct {
	ID string `json:"id"`
}

var (
	ErrUserNotFound = apierror.Define("user_not_found", http.StatusNotFound,
		"User {id} was not found", apierror.WithDetailsType[UserRef]())
	ErrEmailTaken = apierror.Define("email_already_taken", http.StatusConflict,
		"This email address is already taken")

	userErrors = apierror.MustNew("users", ErrUserNotFound, ErrEmailTaken)
)

// userSchema declares which user fields a PATCH payload may touch and under
// what rules. The name stays mandatory, email and bio can be reset with an
// explicit null, and opting into marketing requires an email on file.
var userSchema = patch.MustNewSchema(
	patch.Field("name", func(u *User) *string { return &u.Name },
		patch.NonClearable[string](),
		patch.Validate(func(name string) error {
			return validator.Apply(
				validator.Required("name", name),
				validator.MaxLen("name", name, 100),
			)
		})),
	patch.Field("email", func(u *User) **string { return &u.Email },
		patch.Validate(func(email *string) error {
			if email == nil {
				return errors.New("must be a valid email address")
			}
			return validator.Apply(validator.ValidEmail("email", *email))
		})),
	patch.Field("bio", func(u *User) **string { return &u.Bio },
		patch.Validate(func(bio *string) error {
			if bio == nil {
				return nil
			}
			return validator.Apply(validator.MaxLen("bio", *bio, 500))
		})),
	patch.Field("marketing_opt_in", func(u *User) *bool { return &u.MarketingOptIn }),
	patch.Invariant("marketing_requires_email", func(u *User) error {
		if u.MarketingOptIn && u.Email == nil {
			return errors.New("marketing emails require an email address on file")
		}
		return nil
	}),
)

const userColumns = "id, email, name, bio, marketing_opt_in"

func findUser(ctx context.Context, q pg.Querier, id uuid.UUID) (User, error) {
	rows, err := q.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = @id",
		pgx.NamedArgs{"id": id})
	if err != nil {
		return User{}, err
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[User])
	if err != nil {
		if pg.IsNotFoundError(err) {
			return User{}, ErrUserNotFound.New(apierror.Details(UserRef{ID: id.String()}))
		}
		return User{}, err
	}
	return user, nil
}

func listUsers(ctx context.Context, q pg.Querier, limit, offset int) ([]User, error) {
	rows, err := q.Query(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY name, id LIMIT @limit OFFSET @offset",
		pgx.NamedArgs{"limit": limit, "offset": offset})
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[User])
}

func insertUser(ctx context.Context, q pg.Querier, u User) error {
	_, err := q.Exec(ctx,
		"INSERT INTO users ("+userColumns+") VALUES (@id, @email, @name, @bio, @marketing_opt_in)",
		pgx.NamedArgs{
			"id":               u.ID,
			"email":            u.Email,
			"name":             u.Name,
			"bio":              u.Bio,
			"marketing_opt_in": u.MarketingOptIn,
		})
	if pg.IsDuplicateKeyError(err) {
		return ErrEmailTaken.New(apierror.Cause(err))
	}
	return err
}

func updateUser(ctx context.Context, q pg.Querier, id uuid.UUID, columns map[string]any) error {
	query, args, err := pg.BuildUpdate("users", columns, "id = @id", pgx.NamedArgs{"id": id})
	if err != nil {
		return err
	}
	tag, err := q.Exec(ctx, query, args)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrEmailTaken.New(apierror.Cause(err))
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound.New(apierror.Details(UserRef{ID: id.String()}))
	}
	return nil
}
