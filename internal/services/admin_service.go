package services

import (
	"crypto/subtle"
	"strings"

	"github.com/ShivChilu/chicken-shop/internal/domain"
)

var ErrInvalidPin = domain.Unauthorized("Invalid PIN")

// AdminService guards the admin screens with one shared PIN. There are no
// sessions or tokens; callers re-check as they see fit.
type AdminService struct {
	pin string
}

func NewAdminService(pin string) *AdminService {
	return &AdminService{pin: strings.TrimSpace(pin)}
}

func (s *AdminService) Verify(pin string) error {
	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(pin)), []byte(s.pin)) != 1 {
		return ErrInvalidPin
	}
	return nil
}
