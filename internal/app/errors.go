package app

import "errors"

var (
	// ErrInvalidCredentials is returned when the supplied credentials do not match.
	// This message is shown to end users and must not enable account enumeration.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	ErrEmailAlreadyRegistered    = errors.New("Email already registered")
	ErrNameEmailPasswordRequired = errors.New("name, email and password required")

	ErrUserNotFound       = errors.New("User not found")
	ErrRoleNotFound       = errors.New("Role not found")
	ErrAssessmentNotFound = errors.New("Assessment not found")
	ErrAnalysisNotFound   = errors.New("Analysis not found")

	ErrSkillRequired      = errors.New("skill name required")
	ErrProgressOutOfRange = errors.New("progress must be between 0 and 100")
	ErrLevelOutOfRange    = errors.New("skill levels must be between 1 and 5")

	// ErrAIUnavailable wraps upstream completion failures.
	ErrAIUnavailable = errors.New("AI service unavailable")
)
