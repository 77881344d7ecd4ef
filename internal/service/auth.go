package service

import (
	"crypto/subtle"
	"fmt"

	"github.com/akseleran/VenueBooker/internal/domain"
)

// Credentials are the two static shared passwords. This gate only routes
// users to the right view; it is not a security boundary and there are no
// accounts behind it.
type Credentials struct {
	StaffPassword   string
	StudentPassword string
}

type AuthService struct {
	creds Credentials
}

func NewAuthService(creds Credentials) *AuthService {
	return &AuthService{creds: creds}
}

// Login checks the password for the role and returns the view to show.
func (s *AuthService) Login(role, password string) (string, error) {
	var expected, view string
	switch role {
	case domain.RoleStaff:
		expected, view = s.creds.StaffPassword, domain.ViewStaffUserInfo
	case domain.RoleStudent:
		expected, view = s.creds.StudentPassword, domain.ViewStudentCalendar
	default:
		return "", fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
		return "", domain.ErrInvalidCredentials
	}

	return view, nil
}
