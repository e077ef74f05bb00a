package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
	"github.com/MrJamesThe3rd/cashbook/internal/category/store"
	"github.com/MrJamesThe3rd/cashbook/internal/database"
)

func TestStore_ListByType(t *testing.T) {
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.New(context.Background(), connStr)
	if err != nil {
		t.Skipf("could not connect to postgres: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(connStr))

	s := store.New(db)

	categories, err := s.ListByType(context.Background(), cashbook.TypeEvent)
	require.NoError(t, err)

	ids := make(map[int]bool, len(categories))
	for _, c := range categories {
		ids[c.ID] = true
	}

	assert.True(t, ids[cashbook.UndefinedExpenseCategoryID])
	assert.True(t, ids[cashbook.UndefinedIncomeCategoryID])
	assert.True(t, ids[30], "event transfer category")
	assert.False(t, ids[31], "unit transfer category")
	assert.False(t, ids[13], "camp only category")
	assert.Equal(t, 1, categories[0].ID, "highest priority first")
}
