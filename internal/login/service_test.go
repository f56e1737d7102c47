package login

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"terminal-terrace/conduit/internal/testutils"
	"terminal-terrace/conduit/packages/response"
)

func TestLoginService(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewLoginService(db)

	testUser := testutils.CreateTestUser(db,
		testutils.WithEmail("jane@example.com"),
		testutils.WithPassword("Secret#123"),
	)

	tests := []struct {
		name     string
		req      LoginRequest
		wantCode response.ResponseCode
		wantMsg  string
	}{
		{
			name: "successful login",
			req:  LoginRequest{Email: "jane@example.com", Password: "Secret#123"},
		},
		{
			name: "email is case insensitive",
			req:  LoginRequest{Email: " JANE@example.com", Password: "Secret#123"},
		},
		{
			name:     "wrong password",
			req:      LoginRequest{Email: "jane@example.com", Password: "secret#123"},
			wantCode: response.Unauthorized,
			wantMsg:  "Invalid credentials",
		},
		{
			name:     "unknown email",
			req:      LoginRequest{Email: "nobody@example.com", Password: "Secret#123"},
			wantCode: response.Unauthorized,
			wantMsg:  "Invalid credentials",
		},
		{
			name:     "empty email",
			req:      LoginRequest{Password: "Secret#123"},
			wantCode: response.InvalidParameter,
			wantMsg:  "All fields are required",
		},
		{
			name:     "empty password",
			req:      LoginRequest{Email: "jane@example.com"},
			wantCode: response.InvalidParameter,
			wantMsg:  "All fields are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, bizErr := service.Login(context.Background(), tt.req)

			if tt.wantMsg == "" {
				assert.Nil(t, bizErr)
				assert.Equal(t, testUser.ID, found.ID)
				return
			}

			if assert.NotNil(t, bizErr) {
				assert.Equal(t, tt.wantCode, bizErr.Code)
				assert.Equal(t, tt.wantMsg, bizErr.Msg)
			}
		})
	}
}
