package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserRequest() CreateUserRequest {
	return CreateUserRequest{
		Username: "alice_01",
		Email:    "alice@example.com",
		Password: "long enough secret",
	}
}

func TestCreateUserRequest_Valid(t *testing.T) {
	req := validUserRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateUserRequest_UsernameRules(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"minimum length", "abcd", false},
		{"maximum length", "a2345678901234567890", false},
		{"dots dashes underscores", "a.b-c_d", false},
		{"too short", "abc", true},
		{"too long", "a23456789012345678901", true},
		{"spaces", "ab cd", true},
		{"at sign", "ab@cd", true},
		{"unicode", "abcdé", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUserRequest()
			req.Username = tt.username
			err := req.Validate()
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, CodeValidationFailed, verr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateUserRequest_Email(t *testing.T) {
	req := validUserRequest()
	req.Email = "not-an-address"

	var verr *ValidationError
	require.ErrorAs(t, req.Validate(), &verr)
	assert.Equal(t, CodeValidationFailed, verr.Code)
}

func TestCreateUserRequest_PasswordBounds(t *testing.T) {
	req := validUserRequest()

	req.Password = "short7!"
	assert.Error(t, req.Validate())

	req.Password = string(make([]byte, 129))
	assert.Error(t, req.Validate())

	req.Password = "exactly8"
	assert.NoError(t, req.Validate())
}

func TestUserPublic_DropsHash(t *testing.T) {
	u := User{ID: "u1", Username: "alice", Email: "alice@example.com", PasswordHash: "$2a$..."}
	id := u.Public()
	assert.Equal(t, Identity{ID: "u1", Username: "alice", Email: "alice@example.com"}, id)
}
