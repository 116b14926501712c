package domain

// User represents an authenticated account as returned by the backend.
// The id is an opaque string minted by the backend and never parsed.
type User struct {
	ID       string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session is the persisted authentication state. Token presence alone
// decides logged-in status; the token is opaque and never validated
// client-side.
type Session struct {
	Token   string `json:"token"`
	User    *User  `json:"user,omitempty"`
	IsAdmin bool   `json:"is_admin"`
}

// Role identifies the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one entry in the conversation log. Content is backend-rendered
// markup and is displayed as-is.
type Message struct {
	Role      Role
	Content   string
	Timestamp string
}

// Attachment is a captured or selected file awaiting send. At most one
// attachment is pending at a time.
type Attachment struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Position is a single geolocation sample
type Position struct {
	Latitude  float64
	Longitude float64
}

// Profile is the structured medical profile, fetched and saved wholesale.
// Field names mirror the backend contract.
type Profile struct {
	PersonalInformation  PersonalInformation `json:"personal_information"`
	EmergencyContact     EmergencyContact    `json:"emergency_contact"`
	MedicalHistory       MedicalHistory      `json:"medical_history"`
	LifestyleInformation Lifestyle           `json:"lifestyle_information"`
	ConsentPreferences   ConsentPreferences  `json:"consent_preferences"`
}

type PersonalInformation struct {
	FullName      string `json:"full_name"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	ContactNumber string `json:"contact_number"`
	EmailAddress  string `json:"email_address"`
	HomeAddress   string `json:"home_address"`
}

type EmergencyContact struct {
	Name          string `json:"name"`
	Relationship  string `json:"relationship"`
	ContactNumber string `json:"contact_number"`
}

type MedicalHistory struct {
	ChronicConditions  []string `json:"chronic_conditions"`
	Allergies          []string `json:"allergies"`
	CurrentMedications []string `json:"current_medications"`
}

type Lifestyle struct {
	SmokingAlcohol     string `json:"smoking_alcohol"`
	DietaryPreferences string `json:"dietary_preferences"`
}

type ConsentPreferences struct {
	ConsentDataUse          bool     `json:"consent_data_use"`
	PreferredCommunication  string   `json:"preferred_communication"`
	NotificationPreferences []string `json:"notification_preferences"`
}
