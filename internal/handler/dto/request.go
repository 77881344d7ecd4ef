package dto

type LoginRequest struct {
	Role     string `json:"role" binding:"required,oneof=staff student"`
	Password string `json:"password" binding:"required"`
}

type StartSessionRequest struct {
	OrganizerName string `json:"organizer_name" binding:"required"`
	Contact       string `json:"contact"`
	Email         string `json:"email"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
}

// StageDetailsRequest carries the scheduling step. Time components arrive
// exactly as the form fields hold them; the service applies the defaults
// for blank minutes and meridiem.
type StageDetailsRequest struct {
	Title string `json:"title" binding:"required"`
	Type  string `json:"type" binding:"required"`
	Venue string `json:"venue" binding:"required"`
	Date  string `json:"date" binding:"required"`

	StartHour     string `json:"start_hour" binding:"required"`
	StartMinute   string `json:"start_minute"`
	StartMeridiem string `json:"start_meridiem"`
	EndHour       string `json:"end_hour" binding:"required"`
	EndMinute     string `json:"end_minute"`
	EndMeridiem   string `json:"end_meridiem"`

	TargetDepartment string `json:"target_department"`
	AudienceCount    string `json:"audience_count"`
}
