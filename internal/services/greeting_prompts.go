package services

import (
	"fmt"
	"strings"

	"github.com/rce-newyear/greetings-api/internal/models"
)

// ordinalYear renders a year code as its display ordinal ("3" -> "3rd").
// Unknown codes pass through unchanged; that is a defensive fallback, not
// an error.
func ordinalYear(year string) string {
	switch year {
	case "1":
		return "1st"
	case "2":
		return "2nd"
	case "3":
		return "3rd"
	case "4":
		return "4th"
	default:
		return year
	}
}

const englishSystemPrompt = `You are generating New Year 2026 greetings for engineering students from Ramachandra College of Engineering (RCE).
Create warm, motivational, and personalized messages that feel sincere and modern.
Use the student's details to create a unique greeting that resonates with their journey.
Keep messages positive, encouraging, and not too long (2-4 sentences for the main message).
Avoid clichés and generic phrases - make each greeting feel special.
RESPOND ONLY IN ENGLISH.
Return ONLY valid JSON with these exact keys:
{
  "greetingTitle": "A short title like 'Happy New Year 2026, [Name]! 🎉'",
  "greetingBody": "2-4 sentences personalized greeting using their details",
  "motivationalQuote": "A short, inspiring quote (1-2 sentences)"
}`

const teluguSystemPrompt = `మీరు రామచంద్ర కాలేజ్ ఆఫ్ ఇంజనీరింగ్ (RCE) విద్యార్థుల కోసం నూతన సంవత్సర 2026 శుభాకాంక్షలు సృష్టిస్తున్నారు.
వారి వివరాలను ఉపయోగించి వెచ్చని, ప్రేరణాత్మక మరియు వ్యక్తిగతీకరించిన సందేశాలను సృష్టించండి.
సందేశాలను సానుకూలంగా, ప్రోత్సాహకరంగా ఉంచండి (ప్రధాన సందేశానికి 2-4 వాక్యాలు).
తెలుగులో మాత్రమే స్పందించండి.
ఈ ఖచ్చితమైన కీలతో చెల్లుబాటు అయ్యే JSON మాత్రమే తిరిగి ఇవ్వండి:
{
  "greetingTitle": "[పేరు], నూతన సంవత్సర శుభాకాంక్షలు 2026! 🎉 వంటి చిన్న శీర్షిక",
  "greetingBody": "వారి వివరాలను ఉపయోగించి 2-4 వాక్యాల వ్యక్తిగతీకరించిన శుభాకాంక్ష",
  "motivationalQuote": "చిన్న, ప్రేరణాదాయక కోట్ (1-2 వాక్యాలు)"
}`

// buildPrompts constructs the language-specific instruction pair for one
// generation call. The system prompt fixes tone and output shape; the user
// prompt embeds the student's details.
func buildPrompts(req *models.GenerateGreetingRequest, yearOrdinal string) (systemPrompt, userPrompt string) {
	if req.Language == models.LanguageTelugu {
		var b strings.Builder
		b.WriteString("ఈ విద్యార్థి కోసం ప్రత్యేక నూతన సంవత్సర 2026 శుభాకాంక్ష సృష్టించండి:\n")
		fmt.Fprintf(&b, "- పేరు: %s\n", req.Name)
		fmt.Fprintf(&b, "- బ్రాంచ్: %s (ఇంజనీరింగ్)\n", req.Branch)
		fmt.Fprintf(&b, "- సంవత్సరం: %s సంవత్సరం\n", yearOrdinal)
		if req.RollNumber != "" {
			fmt.Fprintf(&b, "- రోల్ నంబర్: %s\n", req.RollNumber)
		}
		if req.Goal != "" {
			fmt.Fprintf(&b, "- 2026 కోసం వారి లక్ష్యం: %s\n", req.Goal)
		}
		b.WriteString("\nవ్యక్తిగతంగా, వెచ్చగా మరియు ప్రేరణాత్మకంగా ఉండాలి. వారి బ్రాంచ్ మరియు లక్ష్యాలను ప్రస్తావించండి.")
		return teluguSystemPrompt, b.String()
	}

	var b strings.Builder
	b.WriteString("Generate a unique New Year 2026 greeting for:\n")
	fmt.Fprintf(&b, "- Name: %s\n", req.Name)
	fmt.Fprintf(&b, "- Branch: %s (Engineering)\n", req.Branch)
	fmt.Fprintf(&b, "- Year: %s Year\n", yearOrdinal)
	if req.RollNumber != "" {
		fmt.Fprintf(&b, "- Roll Number: %s\n", req.RollNumber)
	}
	if req.Goal != "" {
		fmt.Fprintf(&b, "- Their goal for 2026: %s\n", req.Goal)
	}
	b.WriteString("\nMake it personal, warm, and motivational. Reference their branch and goals if provided.")
	return englishSystemPrompt, b.String()
}
