package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	assert.EqualError(t, ValidateName("   "), "Name cannot be empty")
	assert.EqualError(t, ValidateName("Bob"), "Name Bob is too short, at least 4 characters")
	assert.NoError(t, ValidateName("Bobby Tables"))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr string
	}{
		{"jane@example.com", ""},
		{"jane.doe-1@mail.example.org", ""},
		{"a@b", "Invalid email format"},
		{"jane.example.com", "Invalid email format"},
		{"jane@example.toolong", "The email jane@example.toolong is invalid, provide a correct one"},
		{"ja ne@example.com", "The email ja ne@example.com is invalid, provide a correct one"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"strong", "Secret#123", ""},
		{"too short", "Se#1", "Password must be at least 8 characters"},
		{"no uppercase", "secret#123", "Password must contain at least one uppercase letter"},
		{"no digit", "Secret#abc", "Password must contain at least one number"},
		{"no special", "Secret1234", "Password must contain uppercase, lowercase, number, and special character"},
		{"no lowercase", "SECRET#123", "Password must contain uppercase, lowercase, number, and special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeBio(t *testing.T) {
	bio, err := NormalizeBio("")
	assert.NoError(t, err)
	assert.Nil(t, bio)

	_, err = NormalizeBio("too short")
	assert.EqualError(t, err, "bio too short, at least 10 characters")

	bio, err = NormalizeBio("I write about Go and databases")
	require.NoError(t, err)
	assert.Equal(t, "I write about Go and databases", *bio)
}

func TestNormalizeImage(t *testing.T) {
	img, err := NormalizeImage("")
	assert.NoError(t, err)
	assert.Nil(t, img)

	_, err = NormalizeImage("ftp://example.com/me.png")
	assert.EqualError(t, err, "Invalid image!")

	img, err = NormalizeImage("https://example.com/me.png")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/me.png", *img)
}

func TestHashEmail(t *testing.T) {
	// echo -n "test@example.com" | sha256sum
	assert.Equal(t, "973dfe463ec85785f5f95af5ba3906eedb2d931c24e69824a89ea65dba4e813b", HashEmail("test@example.com"))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Secret#123")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "Secret#123"))
	assert.False(t, CheckPassword(hash, "secret#123"))
	assert.False(t, CheckPassword("not-a-hash", "Secret#123"))
}
