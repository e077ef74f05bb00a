package recipient_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/cashbook/internal/cache"
	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
	"github.com/MrJamesThe3rd/cashbook/internal/cashbook/memory"
	"github.com/MrJamesThe3rd/cashbook/internal/recipient"
)

func TestService_Suggest(t *testing.T) {
	type testCase struct {
		name      string
		query     string
		setupMock func(repo *recipient.MockRepository, members *recipient.MockMemberSource)
		want      []string
	}

	tests := []testCase{
		{
			name:  "RecentFirstThenMembers",
			query: "an",
			setupMock: func(repo *recipient.MockRepository, members *recipient.MockMemberSource) {
				repo.EXPECT().RecentRecipients(gomock.Any(), 5, "an", recipient.SuggestionLimit).Return([]string{"Jana Nová", "Anna"}, nil)
				members.EXPECT().MemberNames(gomock.Any(), 5, gomock.Any()).Return([]string{"ANNA", "Petr", "Daniel"}, nil)
			},
			want: []string{"Jana Nová", "Anna", "Daniel"},
		},
		{
			name:  "MembersUnavailable",
			query: "  shop ",
			setupMock: func(repo *recipient.MockRepository, members *recipient.MockMemberSource) {
				repo.EXPECT().RecentRecipients(gomock.Any(), 5, "shop", recipient.SuggestionLimit).Return([]string{"Shop"}, nil)
				members.EXPECT().MemberNames(gomock.Any(), 5, gomock.Any()).Return(nil, cashbook.ErrExternalUnavailable)
			},
			want: []string{"Shop"},
		},
		{
			name: "Limited",
			setupMock: func(repo *recipient.MockRepository, members *recipient.MockMemberSource) {
				var names []string
				for i := range 30 {
					names = append(names, fmt.Sprintf("Member %02d", i))
				}

				repo.EXPECT().RecentRecipients(gomock.Any(), 5, "", recipient.SuggestionLimit).Return(nil, nil)
				members.EXPECT().MemberNames(gomock.Any(), 5, gomock.Any()).Return(names, nil)
			},
			want: []string{
				"Member 00", "Member 01", "Member 02", "Member 03", "Member 04",
				"Member 05", "Member 06", "Member 07", "Member 08", "Member 09",
				"Member 10", "Member 11", "Member 12", "Member 13", "Member 14",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := recipient.NewMockRepository(ctrl)
			members := recipient.NewMockMemberSource(ctrl)
			tt.setupMock(repo, members)

			got, err := recipient.NewService(repo, members, nil).Suggest(context.Background(), 5, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_SuggestCachesMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := recipient.NewMockRepository(ctrl)
	members := recipient.NewMockMemberSource(ctrl)

	repo.EXPECT().RecentRecipients(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	members.EXPECT().MemberNames(gomock.Any(), 1, gomock.Any()).Return([]string{"Eva"}, nil).Times(1)

	svc := recipient.NewService(repo, members, cache.NewLRU[[]string](10, time.Minute))

	for range 2 {
		got, err := svc.Suggest(context.Background(), 1, "e")
		require.NoError(t, err)
		assert.Equal(t, []string{"Eva"}, got)
	}
}

func TestService_SuggestRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := errors.New("db error")
	repo := recipient.NewMockRepository(ctrl)
	repo.EXPECT().RecentRecipients(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := recipient.NewService(repo, nil, nil).Suggest(context.Background(), 1, "")
	assert.ErrorIs(t, err, dbErr)
}

func TestLedgerRepository_RecentRecipients(t *testing.T) {
	ctx := context.Background()
	cashbooks := memory.NewRepository()

	id, err := cashbooks.Create(ctx, cashbook.Owner{Type: cashbook.TypeUnit, ID: 3})
	require.NoError(t, err)

	cb, err := cashbooks.Find(ctx, id)
	require.NoError(t, err)

	food := cashbook.Category{ID: 9, Operation: cashbook.OperationExpense}

	for i, name := range []string{"Old Shop", "Bakery", "New Shop", "Bakery"} {
		r, err := cashbook.NewRecipient(name)
		require.NoError(t, err)

		item, err := cashbook.NewChitItem(cashbook.MustAmount("1"), food, "x")
		require.NoError(t, err)

		date := time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC)
		_, err = cb.AddChit(cashbook.NewChitBody(nil, date, &r), []cashbook.ChitItem{item}, cashbook.PaymentMethodCash)
		require.NoError(t, err)
	}

	require.NoError(t, cashbooks.Save(ctx, cb))

	repo := recipient.NewLedgerRepository(cashbooks)

	got, err := repo.RecentRecipients(ctx, 3, "shop", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"New Shop", "Old Shop"}, got)

	got, err = repo.RecentRecipients(ctx, 3, "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bakery", "New Shop"}, got)

	got, err = repo.RecentRecipients(ctx, 99, "", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
