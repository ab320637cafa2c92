package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/acara-ticketing/internal/model"
)

var categoryCols = []string{"id", "name", "description", "icon", "created_at", "updated_at"}

func TestCategoryRepoFindAllPaginates(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCategoryRepo(db)
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT").WithArgs("%mus%", "%mus%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery("SELECT (.+) FROM categories WHERE (.+) LIMIT").
		WithArgs("%mus%", "%mus%", 10, 10).
		WillReturnRows(sqlmock.NewRows(categoryCols).
			AddRow("c1", "Music", "Live music", "", now, now))

	items, total, err := repo.FindAll(context.Background(), model.PageQuery{Page: 2, Limit: 10, Search: "Mus"})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Music", items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepoFindAllEmptyIsNotNil(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCategoryRepo(db)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT (.+) FROM categories").WillReturnRows(sqlmock.NewRows(categoryCols))

	items, total, err := repo.FindAll(context.Background(), model.PageQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCategoryRepoDeleteMissing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCategoryRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM categories WHERE id").WillReturnRows(sqlmock.NewRows(categoryCols))

	c, err := repo.Delete(context.Background(), "missing")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLikePatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, `%50\% off\_x%`, likePattern("50% OFF_x"))
}
