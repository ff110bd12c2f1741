package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
	"github.com/se1dhe/botpanel/internal/domain/model"
)

func TestListBots_QueryParams(t *testing.T) {
	var gotQuery map[string][]string
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/bots", r.URL.Path)
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]model.Bot{{ID: 1, Name: "trader", Status: model.BotStatusActive}})
	}))
	creds.Seed("tok1")

	q := "trade"
	category := "finance"
	bots, err := client.ListBots(context.Background(), model.BotsListOptions{
		Limit:    25,
		Offset:   50,
		Q:        &q,
		Category: &category,
	})

	require.NoError(t, err)
	require.Len(t, bots, 1)
	assert.Equal(t, "trader", bots[0].Name)
	assert.Equal(t, []string{"25"}, gotQuery["limit"])
	assert.Equal(t, []string{"50"}, gotQuery["skip"])
	assert.Equal(t, []string{"trade"}, gotQuery["search"])
	assert.Equal(t, []string{"finance"}, gotQuery["category"])
}

func TestListBots_DefaultsOmitQuery(t *testing.T) {
	var rawQuery string
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]model.Bot{})
	}))
	creds.Seed("tok1")

	_, err := client.ListBots(context.Background(), model.BotsListOptions{})

	require.NoError(t, err)
	assert.Empty(t, rawQuery)
}

func TestCreateBot(t *testing.T) {
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/bots", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req model.CreateBotRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "trader", req.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(model.Bot{ID: 7, Name: req.Name, Status: model.BotStatusActive})
	}))
	creds.Seed("tok1")

	bot, err := client.CreateBot(context.Background(), &model.CreateBotRequest{
		Name:     "trader",
		Category: "finance",
		Price:    9.99,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), bot.ID)
	assert.Equal(t, model.BotStatusActive, bot.Status)
}

func TestCreateBot_NilRequest(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())

	_, err := client.CreateBot(context.Background(), nil)

	assert.ErrorContains(t, err, "request is required")
}

func TestUpdateBot(t *testing.T) {
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/v1/bots/7", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "inactive", body["status"])
		// Unset fields stay out of the payload so the server leaves them alone.
		assert.NotContains(t, body, "name")

		_ = json.NewEncoder(w).Encode(model.Bot{ID: 7, Name: "trader", Status: model.BotStatusInactive})
	}))
	creds.Seed("tok1")

	status := model.BotStatusInactive
	bot, err := client.UpdateBot(context.Background(), 7, &model.UpdateBotRequest{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, model.BotStatusInactive, bot.Status)
}

func TestDeleteBot(t *testing.T) {
	var method, path string
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Bot deleted successfully"})
	}))
	creds.Seed("tok1")

	require.NoError(t, client.DeleteBot(context.Background(), 9))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/v1/bots/9", path)
}

func TestListUsers(t *testing.T) {
	var gotQuery map[string][]string
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/users", r.URL.Path)
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]model.User{
			{ID: 1, Name: "A", Email: "a@x.com", Role: domainauth.RoleAdmin, IsActive: true},
		})
	}))
	creds.Seed("tok1")

	q := "a@x"
	users, err := client.ListUsers(context.Background(), model.UsersListOptions{Limit: 10, Q: &q})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domainauth.RoleAdmin, users[0].Role)
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.Equal(t, []string{"a@x"}, gotQuery["search"])
}

func TestUpdateUser(t *testing.T) {
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/v1/users/3", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body["role"])

		_ = json.NewEncoder(w).Encode(model.User{ID: 3, Name: "B", Email: "b@x.com", Role: domainauth.RoleAdmin, IsActive: true})
	}))
	creds.Seed("tok1")

	role := domainauth.RoleAdmin
	user, err := client.UpdateUser(context.Background(), 3, &model.UpdateUserRequest{Role: &role})

	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, user.Role)
}

func TestUpdateUser_NilRequest(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())

	_, err := client.UpdateUser(context.Background(), 3, nil)

	assert.ErrorContains(t, err, "request is required")
}

func TestDeleteUser(t *testing.T) {
	var method, path string
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "User deleted successfully"})
	}))
	creds.Seed("tok1")

	require.NoError(t, client.DeleteUser(context.Background(), 4))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/v1/users/4", path)
}
