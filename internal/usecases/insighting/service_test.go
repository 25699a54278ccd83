package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
	"github.com/vfg2006/ads-insights-extractor/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string {
	return &s
}

func TestResolveTimeRange(t *testing.T) {
	now := time.Date(2024, 9, 21, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		daysBack  int
		floor     time.Time
		wantSince time.Time
	}{
		{name: "Sem corte pela data base", daysBack: 7, floor: date(2024, 8, 22), wantSince: date(2024, 9, 14)},
		{name: "Corte pela data base", daysBack: 60, floor: date(2024, 8, 22), wantSince: date(2024, 8, 22)},
		{name: "Início igual à data base", daysBack: 30, floor: date(2024, 8, 22), wantSince: date(2024, 8, 22)},
		{name: "Zero dias gera intervalo de um dia", daysBack: 0, floor: date(2024, 8, 22), wantSince: date(2024, 9, 21)},
		{name: "Data base com hora é truncada", daysBack: 90, floor: time.Date(2024, 8, 22, 23, 59, 0, 0, time.UTC), wantSince: date(2024, 8, 22)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTimeRange(now, tt.daysBack, tt.floor)
			assert.Equal(t, tt.wantSince, got.Since)
			assert.Equal(t, date(2024, 9, 21), got.Until)
		})
	}
}

func TestResolveTimeRange_MaxProperty(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	today := date(2025, 3, 1)
	floors := []time.Time{date(2024, 1, 1), date(2025, 2, 1), date(2025, 2, 27), date(2025, 3, 1)}

	for daysBack := 0; daysBack <= 120; daysBack++ {
		for _, floor := range floors {
			got := ResolveTimeRange(now, daysBack, floor)

			want := today.AddDate(0, 0, -daysBack)
			if want.Before(floor) {
				want = floor
			}

			require.Equal(t, want, got.Since, "daysBack=%d floor=%s", daysBack, floor)
			require.Equal(t, today, got.Until)
		}
	}
}

func TestFields(t *testing.T) {
	assert.Equal(t,
		[]string{"adset_name", "adset_id", "impressions", "clicks", "spend", "actions", "action_values"},
		Fields(domain.LevelAdSet),
	)
}

func TestService_Fetch(t *testing.T) {
	now := time.Date(2024, 9, 21, 10, 0, 0, 0, time.UTC)
	expectedRequest := domain.InsightsRequest{
		TimeRange:     domain.TimeRange{Since: date(2024, 8, 22), Until: date(2024, 9, 21)},
		Level:         domain.LevelCampaign,
		TimeIncrement: 1,
		Fields:        Fields(domain.LevelCampaign),
	}
	params := domain.FetchParams{
		DaysBack:      30,
		FloorDate:     date(2024, 8, 22),
		Level:         domain.LevelCampaign,
		TimeIncrement: 1,
	}

	t.Run("Conta com erro não impede as demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		hook := logtest.NewGlobal()
		defer hook.Reset()

		provider := mocks.NewMockInsightsProvider(ctrl)
		service := NewService(provider, 1).WithClock(fixedClock(now))

		gomock.InOrder(
			provider.EXPECT().
				GetInsights(gomock.Any(), "act_A", expectedRequest).
				Return(nil, errors.New("rate limited")),
			provider.EXPECT().
				GetInsights(gomock.Any(), "act_B", expectedRequest).
				Return([]domain.InsightsRow{
					{AccountID: "act_B", EntityID: "b1", DateStart: "2024-09-20"},
					{AccountID: "act_B", EntityID: "b2", DateStart: "2024-09-21"},
				}, nil),
		)

		p := params
		p.AccountIDs = []string{"act_A", "act_B"}
		dataset, results := service.Fetch(context.Background(), p)

		require.Len(t, dataset.Rows, 2)
		assert.Equal(t, "b1", dataset.Rows[0].EntityID)
		assert.Equal(t, "b2", dataset.Rows[1].EntityID)
		assert.Equal(t, RawColumns, dataset.Columns)
		assert.Equal(t, expectedRequest.TimeRange, dataset.TimeRange)

		require.Len(t, results, 2)
		assert.True(t, results[0].Failed())
		assert.False(t, results[1].Failed())

		var warned bool
		for _, entry := range hook.AllEntries() {
			if entry.Level == logrus.WarnLevel && entry.Data["account_id"] == "act_A" {
				warned = true
				assert.Equal(t, "rate limited", entry.Data["error"])
			}
		}
		assert.True(t, warned, "esperava um warning para a conta act_A")
	})

	t.Run("Sem contas não chama o provedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := mocks.NewMockInsightsProvider(ctrl)
		service := NewService(provider, 1).WithClock(fixedClock(now))

		dataset, results := service.Fetch(context.Background(), params)

		assert.Equal(t, 0, dataset.Len())
		assert.Empty(t, dataset.Columns)
		assert.Empty(t, results)
		assert.Equal(t, expectedRequest.TimeRange, dataset.TimeRange)
	})

	t.Run("Todas as contas falham", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := mocks.NewMockInsightsProvider(ctrl)
		service := NewService(provider, 1).WithClock(fixedClock(now))

		provider.EXPECT().GetInsights(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("down")).Times(2)

		p := params
		p.AccountIDs = []string{"act_1", "act_2"}
		dataset, results := service.Fetch(context.Background(), p)

		assert.Equal(t, 0, dataset.Len())
		assert.Empty(t, dataset.Columns)
		assert.Len(t, results, 2)
	})

	t.Run("Contas duplicadas são consultadas duas vezes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		provider := mocks.NewMockInsightsProvider(ctrl)
		service := NewService(provider, 1).WithClock(fixedClock(now))

		provider.EXPECT().GetInsights(gomock.Any(), "act_1", gomock.Any()).
			Return([]domain.InsightsRow{{EntityID: "x"}}, nil).Times(2)

		p := params
		p.AccountIDs = []string{"act_1", "act_1"}
		dataset, _ := service.Fetch(context.Background(), p)

		assert.Equal(t, 2, dataset.Len())
	})
}

func TestService_Fetch_ParallelKeepsAccountOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockInsightsProvider(ctrl)
	service := NewService(provider, 3).WithClock(fixedClock(time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC)))

	delays := map[string]time.Duration{
		"act_1": 30 * time.Millisecond,
		"act_2": 0,
		"act_3": 15 * time.Millisecond,
		"act_4": 5 * time.Millisecond,
	}

	provider.EXPECT().
		GetInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, accountID string, request domain.InsightsRequest) ([]domain.InsightsRow, error) {
			time.Sleep(delays[accountID])
			if accountID == "act_3" {
				return nil, errors.New("invalid account")
			}
			return []domain.InsightsRow{
				{AccountID: accountID, EntityID: accountID + "-1"},
				{AccountID: accountID, EntityID: accountID + "-2"},
			}, nil
		}).
		Times(4)

	dataset, results := service.Fetch(context.Background(), domain.FetchParams{
		AccountIDs:    []string{"act_1", "act_2", "act_3", "act_4"},
		DaysBack:      7,
		FloorDate:     date(2024, 1, 1),
		Level:         domain.LevelAd,
		TimeIncrement: 1,
	})

	ids := make([]string, 0, dataset.Len())
	for _, row := range dataset.Rows {
		ids = append(ids, row.EntityID)
	}
	assert.Equal(t, []string{"act_1-1", "act_1-2", "act_2-1", "act_2-2", "act_4-1", "act_4-2"}, ids)

	require.Len(t, results, 4)
	for i, id := range []string{"act_1", "act_2", "act_3", "act_4"} {
		assert.Equal(t, id, results[i].AccountID)
	}
	assert.True(t, results[2].Failed())
}

func TestFetchAndFlatten_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hook := logtest.NewGlobal()
	defer hook.Reset()

	provider := mocks.NewMockInsightsProvider(ctrl)
	service := NewService(provider, 1).WithClock(fixedClock(time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC)))

	provider.EXPECT().GetInsights(gomock.Any(), "act_1", gomock.Any()).
		Return([]domain.InsightsRow{
			{
				AccountID: "act_1",
				Actions:   []domain.Action{{ActionType: "link_click", Value: strPtr("10")}},
				DateStart: "2024-09-20",
			},
		}, nil)
	provider.EXPECT().GetInsights(gomock.Any(), "act_2", gomock.Any()).
		Return(nil, errors.New("permission denied"))

	dataset, _ := service.Fetch(context.Background(), domain.FetchParams{
		AccountIDs:    []string{"act_1", "act_2"},
		DaysBack:      30,
		FloorDate:     date(2024, 8, 22),
		Level:         domain.LevelCampaign,
		TimeIncrement: 1,
	})
	require.Equal(t, 1, dataset.Len())

	cleaned, err := Flatten(dataset)
	require.NoError(t, err)
	require.Equal(t, 1, cleaned.Len())

	row := cleaned.Rows[0]
	require.NotNil(t, row.ActionType)
	assert.Equal(t, "link_click", *row.ActionType)
	assert.Equal(t, 10.0, row.LinkClicks)

	var logged bool
	for _, entry := range hook.AllEntries() {
		if entry.Data["account_id"] == "act_2" {
			logged = true
		}
	}
	assert.True(t, logged)
}
