package services

import (
	"testing"

	"github.com/rce-newyear/greetings-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestOrdinalYear(t *testing.T) {
	tests := []struct {
		year     string
		expected string
	}{
		{"1", "1st"},
		{"2", "2nd"},
		{"3", "3rd"},
		{"4", "4th"},
		{"7", "7"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ordinalYear(tt.year))
	}
}

func TestBuildPrompts_English(t *testing.T) {
	req := &models.GenerateGreetingRequest{
		Name:       "Asha Reddy",
		Branch:     "CSE",
		Year:       "3",
		RollNumber: "20X51A0501",
		Goal:       "get placed in a product company",
		Language:   models.LanguageEnglish,
	}

	systemPrompt, userPrompt := buildPrompts(req, "3rd")

	assert.Contains(t, systemPrompt, "RESPOND ONLY IN ENGLISH")
	assert.Contains(t, systemPrompt, "greetingTitle")
	assert.Contains(t, userPrompt, "Asha Reddy")
	assert.Contains(t, userPrompt, "CSE")
	assert.Contains(t, userPrompt, "3rd")
	assert.Contains(t, userPrompt, "20X51A0501")
	assert.Contains(t, userPrompt, "get placed in a product company")
}

func TestBuildPrompts_EnglishOmitsEmptyOptionals(t *testing.T) {
	req := &models.GenerateGreetingRequest{
		Name:     "Ravi",
		Branch:   "EEE",
		Year:     "1",
		Language: models.LanguageEnglish,
	}

	_, userPrompt := buildPrompts(req, "1st")

	assert.NotContains(t, userPrompt, "Roll Number")
	assert.NotContains(t, userPrompt, "Their goal for 2026")
}

func TestBuildPrompts_Telugu(t *testing.T) {
	req := &models.GenerateGreetingRequest{
		Name:     "Lakshmi",
		Branch:   "AIML",
		Year:     "2",
		Goal:     "start a startup",
		Language: models.LanguageTelugu,
	}

	systemPrompt, userPrompt := buildPrompts(req, "2nd")

	assert.Contains(t, systemPrompt, "తెలుగులో మాత్రమే స్పందించండి")
	assert.Contains(t, systemPrompt, "greetingBody")
	assert.Contains(t, userPrompt, "Lakshmi")
	assert.Contains(t, userPrompt, "AIML")
	assert.Contains(t, userPrompt, "start a startup")
}

func TestParseRemotePayload(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		p := parseRemotePayload(`{"greetingTitle":"T","greetingBody":"B","motivationalQuote":"Q"}`)
		assert.NotNil(t, p)
		assert.Equal(t, "T", p.GreetingTitle)
	})

	t.Run("wrapped in prose and fencing", func(t *testing.T) {
		content := "Sure! Here is the greeting:\n```json\n{\"greetingTitle\":\"T\",\"greetingBody\":\"B\",\"motivationalQuote\":\"Q\"}\n```"
		p := parseRemotePayload(content)
		assert.NotNil(t, p)
		assert.Equal(t, "B", p.GreetingBody)
	})

	t.Run("no JSON object", func(t *testing.T) {
		assert.Nil(t, parseRemotePayload("Happy New Year!"))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		assert.Nil(t, parseRemotePayload(`{"greetingTitle": "T",`))
	})

	t.Run("blank required field", func(t *testing.T) {
		assert.Nil(t, parseRemotePayload(`{"greetingTitle":"T","greetingBody":"  ","motivationalQuote":"Q"}`))
	})

	t.Run("missing key", func(t *testing.T) {
		assert.Nil(t, parseRemotePayload(`{"greetingTitle":"T","greetingBody":"B"}`))
	})
}
