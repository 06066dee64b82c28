package handler

// successResponse is the generic mutation acknowledgment envelope.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type createAppointmentRequest struct {
	PatientName      string `json:"patientName"      validate:"required"`
	PatientID        string `json:"patientId"        validate:"required"`
	PatientPhone     string `json:"patientPhone"     validate:"required"`
	PatientBirthDate string `json:"patientBirthDate"`
	AppointmentDate  string `json:"appointmentDate"  validate:"required"`
	AppointmentTime  string `json:"appointmentTime"  validate:"required"`
	Department       string `json:"department"       validate:"required"`
	IsHistorical     bool   `json:"isHistorical"`
	SerialNumber     int    `json:"serialNumber"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// editAppointmentRequest carries a partial update; absent fields are left
// untouched.
type editAppointmentRequest struct {
	PatientName      *string `json:"patientName"`
	PatientID        *string `json:"patientId"`
	PatientPhone     *string `json:"patientPhone"`
	PatientBirthDate *string `json:"patientBirthDate"`
	AppointmentDate  *string `json:"appointmentDate"`
	AppointmentTime  *string `json:"appointmentTime"`
	Department       *string `json:"department"`
}

type searchRequest struct {
	SearchType  string `json:"searchType"`
	SearchValue string `json:"searchValue"`
}

type deleteAppointmentRequest struct {
	ID string `json:"id"`
}

type departmentRequest struct {
	DepartmentName string `json:"departmentName" validate:"required"`
}

type createUserRequest struct {
	UserName     string `json:"userName"     validate:"required"`
	UserPassword string `json:"userPassword" validate:"required"`
	UserRole     string `json:"userRole"     validate:"required,oneof=admin staff"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
	Role     string `json:"role"     validate:"required,oneof=admin staff"`
}

type deleteUserRequest struct {
	Username string `json:"username" validate:"required"`
}

type permissionRequest struct {
	Username string `json:"username" validate:"required"`
	Allowed  *bool  `json:"allowed"  validate:"required"`
}

type numberingRequest struct {
	StartFrom    int  `json:"startFrom" validate:"gte=1"`
	ResetCounter bool `json:"resetCounter"`
}

// dataResponse wraps list payloads behind the success flag.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}
