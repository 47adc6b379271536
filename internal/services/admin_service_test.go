package services

import (
	"testing"

	"github.com/ShivChilu/chicken-shop/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAdminService_Verify(t *testing.T) {
	svc := NewAdminService("4242")

	tests := []struct {
		name  string
		pin   string
		valid bool
	}{
		{"correct pin", "4242", true},
		{"surrounding whitespace", " 4242\n", true},
		{"wrong pin", "1234", false},
		{"prefix only", "424", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Verify(tt.pin)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
				assert.EqualError(t, err, "Invalid PIN")
			}
		})
	}
}
