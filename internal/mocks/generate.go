// Package mocks provides mock implementations for testing the console services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the backend API ports. The mocks are generated using go:generate directives.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	botAPI := mocks.NewMockBotAPI(ctrl)
//	botAPI.EXPECT().ListBots(gomock.Any(), gomock.Any()).Return(bots, nil)
package mocks

// Generate mock for BotAPI interface from internal/ports.
// This creates MockBotAPI with methods for all BotAPI interface methods:
// ListBots, CreateBot, UpdateBot, DeleteBot
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=bot_api_mock.go github.com/se1dhe/botpanel/internal/ports BotAPI

// Generate mock for UserAPI interface from internal/ports.
// This creates MockUserAPI with methods for all UserAPI interface methods:
// ListUsers, UpdateUser, DeleteUser
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_api_mock.go github.com/se1dhe/botpanel/internal/ports UserAPI
