package models

import (
	"time"

	"github.com/google/uuid"
)

// Language selects the instruction pair and fallback template set.
// Mixed-language output is never produced.
type Language string

const (
	LanguageEnglish Language = "EN"
	LanguageTelugu  Language = "TE"
)

// GreetingSource records which path produced the greeting text.
type GreetingSource string

const (
	SourceAI       GreetingSource = "ai"
	SourceFallback GreetingSource = "fallback"
)

// GenerateGreetingRequest represents a greeting form submission.
// Validation is fail-fast in field order: the first violation is reported
// alone, matching the one-toast-at-a-time form feedback.
type GenerateGreetingRequest struct {
	Name       string   `json:"name" validate:"required"`
	Branch     string   `json:"branch" validate:"required,oneof=AIML CSE ECE EEE CIVIL MECH"`
	Year       string   `json:"year" validate:"required,oneof=1 2 3 4"`
	RollNumber string   `json:"rollNumber" validate:"omitempty,max=30"`
	Goal       string   `json:"goal" validate:"omitempty,max=500"`
	Language   Language `json:"language" validate:"required,oneof=EN TE"`
}

// Greeting is the structured title/body/quote triple shown to a user,
// plus the identity fields echoed from the request.
type Greeting struct {
	Name              string `json:"name"`
	Branch            string `json:"branch"`
	Year              string `json:"year"`
	GreetingTitle     string `json:"greetingTitle"`
	GreetingBody      string `json:"greetingBody"`
	MotivationalQuote string `json:"motivationalQuote"`
	Slug              string `json:"slug,omitempty"`
	ShareURL          string `json:"shareUrl,omitempty"`
}

// GenerateGreetingResponse is the success envelope for greeting generation
type GenerateGreetingResponse struct {
	Success  bool      `json:"success"`
	Greeting *Greeting `json:"greeting"`
}

// GreetingRecord is a stored greeting row
type GreetingRecord struct {
	ID                uuid.UUID      `json:"id"`
	Slug              string         `json:"slug"`
	Name              string         `json:"name"`
	Branch            string         `json:"branch"`
	Year              string         `json:"year"`
	RollNumber        *string        `json:"rollNumber,omitempty"`
	Goal              *string        `json:"goal,omitempty"`
	GreetingTitle     string         `json:"greetingTitle"`
	GreetingBody      string         `json:"greetingBody"`
	MotivationalQuote string         `json:"motivationalQuote"`
	Language          Language       `json:"language"`
	Source            GreetingSource `json:"source"`
	CreatedAt         time.Time      `json:"createdAt"`
}

// GreetingFilter holds admin list filters. Empty fields are ignored.
type GreetingFilter struct {
	Search string // substring of name or roll number
	Branch string
	Year   string // stored year value, e.g. "3"
}

// AdminGreetingsResponse is the admin list envelope
type AdminGreetingsResponse struct {
	Success   bool              `json:"success"`
	Total     int64             `json:"total"`
	Greetings []*GreetingRecord `json:"greetings"`
}

// ValidationError names the first request field that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}
