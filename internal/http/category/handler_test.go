package category_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
	"github.com/MrJamesThe3rd/cashbook/internal/cashbook/memory"
	"github.com/MrJamesThe3rd/cashbook/internal/category"
	handler "github.com/MrJamesThe3rd/cashbook/internal/http/category"
)

func TestHandler_List(t *testing.T) {
	type testCase struct {
		path    string
		want    int
		wantIDs []int
	}

	repo := memory.NewRepository()

	id, err := repo.Create(context.Background(), cashbook.Owner{Type: cashbook.TypeEvent, ID: 1})
	require.NoError(t, err)

	svc := category.NewService(category.NewStaticRepository(category.Defaults), repo, nil)

	r := chi.NewRouter()
	r.Route("/cashbooks/{cashbookID}/categories", handler.NewHandler(svc).Routes)

	base := "/cashbooks/" + id.String() + "/categories/"

	tests := map[string]testCase{
		"Income": {
			path:    base + "?operation=income",
			want:    http.StatusOK,
			wantIDs: []int{1, 2, 3, 12},
		},
		"Expense": {
			path:    base + "?operation=expense",
			want:    http.StatusOK,
			wantIDs: []int{9, 10, 11, 14, 30, 8},
		},
		"UnknownOperation": {
			path: base + "?operation=transfer",
			want: http.StatusUnprocessableEntity,
		},
		"UnknownCashbook": {
			path: "/cashbooks/" + cashbook.NewCashbookID().String() + "/categories/",
			want: http.StatusNotFound,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, tc.want, rec.Code, rec.Body.String())

			if tc.wantIDs == nil {
				return
			}

			var got []struct {
				ID int `json:"id"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			ids := make([]int, len(got))
			for i, c := range got {
				ids[i] = c.ID
			}

			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestHandler_Get(t *testing.T) {
	repo := memory.NewRepository()

	id, err := repo.Create(context.Background(), cashbook.Owner{Type: cashbook.TypeUnit, ID: 2})
	require.NoError(t, err)

	svc := category.NewService(category.NewStaticRepository(category.Defaults), repo, nil)

	r := chi.NewRouter()
	r.Route("/cashbooks/{cashbookID}/categories", handler.NewHandler(svc).Routes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cashbooks/"+id.String()+"/categories/31", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Name           string `json:"name"`
		Operation      string `json:"operation"`
		SingleItemOnly bool   `json:"single_item_only"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Transfer from event", got.Name)
	assert.Equal(t, "income", got.Operation)
	assert.True(t, got.SingleItemOnly)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cashbooks/"+id.String()+"/categories/30", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
