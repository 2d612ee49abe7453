package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outofschool/internal/model"
	"outofschool/internal/repository"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestEntityPostgres_Create_GeneratedKey(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCategoryPostgres(db)

	rows := sqlmock.NewRows([]string{"id", "title", "description"}).
		AddRow(int64(7), "Music", "Instruments and singing")

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO categories (title, description) VALUES ($1, $2) RETURNING id, title, description",
	)).
		WithArgs("Music", "Instruments and singing").
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &model.Category{Title: "Music", Description: "Instruments and singing"})

	require.NoError(t, err)
	assert.Equal(t, &model.Category{ID: 7, Title: "Music", Description: "Instruments and singing"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityPostgres_Create_UniqueViolation(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProviderTypePostgres(db)

	mock.ExpectQuery("INSERT INTO provider_types").
		WithArgs("Private").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "provider_types_name_key"})

	got, err := repo.Create(context.Background(), &model.ProviderType{Name: "Private"})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, errors.AlreadyExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityPostgres_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewParentPostgres(db)
	ctx := context.Background()
	const q = "SELECT id, user_id, gender, date_of_birth FROM parents WHERE id = $1 AND is_deleted = FALSE"

	t.Run("found", func(t *testing.T) {
		id := uuid.New()
		dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "user_id", "gender", "date_of_birth"}).
			AddRow(id.String(), "user-1", int64(model.GenderFemale), dob)

		mock.ExpectQuery(regexp.QuoteMeta(q)).WithArgs(id).WillReturnRows(rows)

		p, err := repo.GetByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, p.ID)
		assert.Equal(t, "user-1", p.UserID)
		require.NotNil(t, p.Gender)
		assert.Equal(t, model.GenderFemale, *p.Gender)
		require.NotNil(t, p.DateOfBirth)
		assert.True(t, dob.Equal(*p.DateOfBirth))
	})

	t.Run("nullable columns", func(t *testing.T) {
		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "user_id", "gender", "date_of_birth"}).
			AddRow(id.String(), "user-2", nil, nil)

		mock.ExpectQuery(regexp.QuoteMeta(q)).WithArgs(id).WillReturnRows(rows)

		p, err := repo.GetByID(ctx, id)

		require.NoError(t, err)
		assert.Nil(t, p.Gender)
		assert.Nil(t, p.DateOfBirth)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(q)).WithArgs(id).WillReturnError(sql.ErrNoRows)

		p, err := repo.GetByID(ctx, id)

		assert.Nil(t, p)
		assert.True(t, errors.Is(err, errors.NotFound))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityPostgres_GetByFilter(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCityPostgres(db)

	rows := sqlmock.NewRows([]string{"id", "name", "district", "region", "latitude", "longitude"}).
		AddRow(int64(1), "Kyiv", "Kyiv", "Kyiv", 50.45, 30.52)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, district, region, latitude, longitude FROM cities WHERE name LIKE $1 ORDER BY name, id",
	)).
		WithArgs(`K\%y%`).
		WillReturnRows(rows)

	got, err := repo.GetByFilter(context.Background(), repository.Where(repository.HasPrefix("name", "K%y")))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kyiv", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityPostgres_GetByFilter_UnknownColumn(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCityPostgres(db)

	got, err := repo.GetByFilter(context.Background(), repository.Where(repository.Eq("name; DROP TABLE cities", "x")))

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, errors.NotValid))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityPostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewWorkshopPostgres(db)
	providerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM workshops WHERE provider_id = $1 AND is_deleted = FALSE",
	)).
		WithArgs(providerID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	rows := sqlmock.NewRows([]string{
		"id", "title", "email", "phone", "min_age", "max_age", "price", "description",
		"provider_id", "provider_title", "category_id",
	}).AddRow(uuid.NewString(), "Chess", "chess@example.com", "+380501112233", 6, 12, 100.5, "", providerID.String(), "Club", int64(2))

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM workshops WHERE provider_id = $1 AND is_deleted = FALSE ORDER BY title, id LIMIT $2 OFFSET $3",
	)).
		WithArgs(providerID, 1, 2).
		WillReturnRows(rows)

	res, err := repo.List(context.Background(),
		repository.Where(repository.Eq("provider_id", providerID)),
		repository.PageQuery{Limit: 1, Offset: 2},
	)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Chess", res.Items[0].Title)
	assert.Equal(t, providerID, res.Items[0].ProviderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityPostgres_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCategoryPostgres(db)
	ctx := context.Background()
	const q = "UPDATE categories SET title = $1, description = $2 WHERE id = $3 RETURNING id, title, description"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(q)).
			WithArgs("Sport", "Team games", int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description"}).AddRow(int64(3), "Sport", "Team games"))

		got, err := repo.Update(ctx, &model.Category{ID: 3, Title: "Sport", Description: "Team games"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, "Sport", got.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(q)).
			WithArgs("Sport", "", int64(99)).
			WillReturnError(sql.ErrNoRows)

		got, err := repo.Update(ctx, &model.Category{ID: 99, Title: "Sport"})

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, errors.NotFound))
		assert.Contains(t, err.Error(), "categories 99")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityPostgres_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("hard delete", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewCategoryPostgres(db)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = $1")).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("soft delete", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewUserPostgres(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_deleted = TRUE WHERE id = $1")).
			WithArgs("user-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, "user-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEntityPostgres_CountAndAny(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND is_deleted = FALSE)",
	)).
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Any(ctx, repository.Where(repository.Eq("email", "taken@example.com")))
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM users WHERE is_deleted = FALSE",
	)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2 AND is_deleted = FALSE)",
	)).
		WithArgs("taken@example.com", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = repo.Any(ctx, repository.Where(
		repository.Eq("email", "taken@example.com"),
		repository.Ne("id", "user-1"),
	))
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil, "users"))
	assert.True(t, errors.Is(translateError(sql.ErrNoRows, "users"), errors.NotFound))
	assert.True(t, errors.Is(translateError(&pgconn.PgError{Code: "23503"}, "workshops"), errors.NotValid))

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other, "users"))
}
