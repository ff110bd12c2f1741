package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/se1dhe/botpanel/internal/domain/model"
	apperrors "github.com/se1dhe/botpanel/internal/errors"
	"github.com/se1dhe/botpanel/internal/mocks"
)

func newBotService(t *testing.T) (*BotService, *mocks.MockBotAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockBotAPI(ctrl)
	svc, err := NewBotService(BotServiceOptions{API: api, Logger: slog.New(slog.DiscardHandler)})
	require.NoError(t, err)
	return svc, api
}

func TestBotService_List(t *testing.T) {
	svc, api := newBotService(t)
	opts := model.BotsListOptions{Limit: 10}
	api.EXPECT().ListBots(gomock.Any(), opts).Return([]model.Bot{{ID: 1, Name: "trader"}}, nil)

	bots, err := svc.List(context.Background(), opts)

	require.NoError(t, err)
	require.Len(t, bots, 1)
	assert.Equal(t, "trader", bots[0].Name)
}

func TestBotService_Create_NormalizesAndValidates(t *testing.T) {
	svc, api := newBotService(t)
	api.EXPECT().
		CreateBot(gomock.Any(), &model.CreateBotRequest{Name: "trader", Category: "finance", Price: 9.99}).
		Return(&model.Bot{ID: 7, Name: "trader"}, nil)

	bot, err := svc.Create(context.Background(), &model.CreateBotRequest{
		Name:     "  trader  ",
		Category: " finance ",
		Price:    9.99,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), bot.ID)
}

func TestBotService_Create_InvalidRequest(t *testing.T) {
	svc, _ := newBotService(t)

	_, err := svc.Create(context.Background(), &model.CreateBotRequest{Name: "   "})
	assert.ErrorContains(t, err, "bot name is required")

	_, err = svc.Create(context.Background(), &model.CreateBotRequest{Name: "trader", Price: -1})
	assert.ErrorContains(t, err, "price must not be negative")

	_, err = svc.Create(context.Background(), nil)
	assert.ErrorContains(t, err, "request is required")
}

func TestBotService_Update(t *testing.T) {
	svc, api := newBotService(t)
	name := "renamed"
	api.EXPECT().
		UpdateBot(gomock.Any(), int64(7), &model.UpdateBotRequest{Name: &name}).
		Return(&model.Bot{ID: 7, Name: "renamed"}, nil)

	bot, err := svc.Update(context.Background(), 7, &model.UpdateBotRequest{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "renamed", bot.Name)
}

func TestBotService_Update_RejectsBlankName(t *testing.T) {
	svc, _ := newBotService(t)
	blank := "  "

	_, err := svc.Update(context.Background(), 7, &model.UpdateBotRequest{Name: &blank})

	assert.ErrorContains(t, err, "bot name must not be empty")
}

func TestBotService_ToggleStatus(t *testing.T) {
	svc, api := newBotService(t)
	inactive := model.BotStatusInactive
	api.EXPECT().
		UpdateBot(gomock.Any(), int64(3), &model.UpdateBotRequest{Status: &inactive}).
		Return(&model.Bot{ID: 3, Status: model.BotStatusInactive}, nil)

	bot, err := svc.ToggleStatus(context.Background(), model.Bot{ID: 3, Status: model.BotStatusActive})

	require.NoError(t, err)
	assert.Equal(t, model.BotStatusInactive, bot.Status)
}

func TestBotService_Delete_PropagatesNotFound(t *testing.T) {
	svc, api := newBotService(t)
	api.EXPECT().
		DeleteBot(gomock.Any(), int64(42)).
		Return(apperrors.NotFound("DELETE /bots/42: 404 Not Found (bot not found)"))

	err := svc.Delete(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
