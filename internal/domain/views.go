package domain

// Roles sharing the two static passwords.
const (
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// View identifiers the client toggles between. The server names the next
// view after each step; switching is entirely the client's job.
const (
	ViewLogin           = "login-page"
	ViewStaffUserInfo   = "staff-user-info-page"
	ViewStaffDetails    = "staff-event-details-page"
	ViewStaffResource   = "staff-resource-person-page"
	ViewStudentCalendar = "student-calendar-page"
)
