package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBotStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  BotStatus
		ok    bool
	}{
		{name: "active", input: "active", want: BotStatusActive, ok: true},
		{name: "inactive", input: "inactive", want: BotStatusInactive, ok: true},
		{name: "mixed case with spaces", input: "  Active ", want: BotStatusActive, ok: true},
		{name: "unknown", input: "paused", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseBotStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBotStatus_Toggle(t *testing.T) {
	assert.Equal(t, BotStatusInactive, BotStatusActive.Toggle())
	assert.Equal(t, BotStatusActive, BotStatusInactive.Toggle())
}

func TestCreateBotRequest_Validate(t *testing.T) {
	valid := CreateBotRequest{
		Name:        "Customer Support Bot",
		Description: "Automated customer support solution",
		Category:    "Support",
		Price:       29.99,
	}
	require.NoError(t, valid.Validate())

	missingName := valid
	missingName.Name = "   "
	assert.ErrorContains(t, missingName.Validate(), "name is required")

	longName := valid
	longName.Name = strings.Repeat("n", maxBotNameLen+1)
	assert.ErrorContains(t, longName.Validate(), "too long")

	negativePrice := valid
	negativePrice.Price = -1
	assert.ErrorContains(t, negativePrice.Validate(), "negative")
}

func TestCreateBotRequest_Normalize(t *testing.T) {
	req := CreateBotRequest{Name: "  News Bot ", Description: " feed ", Category: " News "}
	req.Normalize()

	assert.Equal(t, "News Bot", req.Name)
	assert.Equal(t, "feed", req.Description)
	assert.Equal(t, "News", req.Category)
}

func TestUpdateBotRequest_Validate(t *testing.T) {
	name := "Shop Bot"
	price := 39.99
	status := BotStatusActive
	valid := UpdateBotRequest{Name: &name, Price: &price, Status: &status}
	require.NoError(t, valid.Validate())

	empty := ""
	assert.Error(t, (&UpdateBotRequest{Name: &empty}).Validate())

	negative := -0.01
	assert.Error(t, (&UpdateBotRequest{Price: &negative}).Validate())

	bad := BotStatus("paused")
	assert.Error(t, (&UpdateBotRequest{Status: &bad}).Validate())

	// All-nil update is a no-op and valid.
	assert.NoError(t, (&UpdateBotRequest{}).Validate())
}
