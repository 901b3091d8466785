// AngelaMos | 2026
// dto_test.go

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angelamos/streamora/internal/core"
)

func TestRegisterRequest_PasswordBounds(t *testing.T) {
	v := core.NewValidator()

	base := RegisterRequest{
		Name:  "Jordan",
		Email: "jordan@example.com",
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"six chars accepted", "secret", false},
		{"seven chars accepted", "secret1", false},
		{"five chars rejected", "short", true},
		{"empty rejected", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.Password = tt.password

			err := v.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
