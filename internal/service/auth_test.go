package service

import (
	"testing"

	"github.com/akseleran/VenueBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() *AuthService {
	return NewAuthService(Credentials{
		StaffPassword:   "staff-secret",
		StudentPassword: "student-secret",
	})
}

func TestAuthService_Login_Staff(t *testing.T) {
	svc := newAuthService()

	view, err := svc.Login(domain.RoleStaff, "staff-secret")

	require.NoError(t, err)
	assert.Equal(t, domain.ViewStaffUserInfo, view)
}

func TestAuthService_Login_Student(t *testing.T) {
	svc := newAuthService()

	view, err := svc.Login(domain.RoleStudent, "student-secret")

	require.NoError(t, err)
	assert.Equal(t, domain.ViewStudentCalendar, view)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(domain.RoleStaff, "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_CrossRolePassword(t *testing.T) {
	svc := newAuthService()

	// The student password does not open the staff flow.
	_, err := svc.Login(domain.RoleStaff, "student-secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownRole(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login("admin", "staff-secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
