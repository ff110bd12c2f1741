package ports

import (
	"context"

	"github.com/se1dhe/botpanel/internal/domain/model"
)

// BotAPI is the bot management surface of the platform backend.
// All operations require an authenticated session.
type BotAPI interface {
	ListBots(ctx context.Context, opts model.BotsListOptions) ([]model.Bot, error)
	CreateBot(ctx context.Context, req *model.CreateBotRequest) (*model.Bot, error)
	UpdateBot(ctx context.Context, id int64, req *model.UpdateBotRequest) (*model.Bot, error)
	DeleteBot(ctx context.Context, id int64) error
}

// UserAPI is the user management surface of the platform backend.
// All operations require an authenticated admin session.
type UserAPI interface {
	ListUsers(ctx context.Context, opts model.UsersListOptions) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
