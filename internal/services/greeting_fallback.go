package services

import (
	"fmt"
	"math/rand"

	"github.com/rce-newyear/greetings-api/internal/models"
)

// greetingPayload is the title/body/quote triple produced by either path.
// The JSON tags match the keys the gateway model is instructed to return.
type greetingPayload struct {
	GreetingTitle     string `json:"greetingTitle"`
	GreetingBody      string `json:"greetingBody"`
	MotivationalQuote string `json:"motivationalQuote"`
}

// VariantPicker selects an index in [0, n). Injected so tests can pin a
// specific template variant; production uses math/rand.
type VariantPicker func(n int) int

// fallbackComposer deterministically composes a greeting from fixed
// language-specific template pools. It has no external dependencies and
// cannot fail.
type fallbackComposer struct {
	pick VariantPicker
}

func newFallbackComposer(pick VariantPicker) *fallbackComposer {
	if pick == nil {
		pick = rand.Intn
	}
	return &fallbackComposer{pick: pick}
}

var englishBodies = []string{
	"Dear %[1]s, as we welcome 2026, may this year bring you extraordinary success in your %[2]s journey. Your %[3]s year is a stepping stone to greatness!",
	"Hello %[1]s! The dawn of 2026 brings new opportunities for a brilliant %[2]s student like you. May your %[3]s year be filled with learning and achievements!",
	"Greetings %[1]s! As 2026 unfolds, may you discover new passions and excel in %[2]s. Your journey in the %[3]s year is just beginning!",
}

var teluguBodies = []string{
	"ప్రియమైన %[1]s, 2026 లోకి అడుగుపెడుతున్న ఈ సమయంలో, మీ %[2]s ప్రయాణంలో %[3]s సంవత్సరంలో అసాధారణ విజయాలు సాధించాలని కోరుకుంటున్నాము!",
	"హలో %[1]s! 2026 కొత్త అవకాశాలను తీసుకువస్తుంది. %[2]s లో మీ %[3]s సంవత్సరం గొప్ప విజయాలతో నిండాలని కోరుకుంటున్నాం!",
	"శుభాకాంక్షలు %[1]s! 2026 మీ జీవితంలో నూతన ఆరంభాన్ని సూచిస్తుంది. %[2]s లో మీ %[3]s సంవత్సర ప్రతిభను చూపించండి!",
}

var englishQuotes = []string{
	`"Small steps every day can make 2026 your best year yet."`,
	`"Dream big, work hard, and let 2026 be the year you surprise yourself."`,
	`"Success is not final, failure is not fatal. Keep pushing forward in 2026!"`,
	`"Every expert was once a beginner. Make 2026 your year of growth."`,
}

var teluguQuotes = []string{
	`"ప్రతిరోజు చిన్న అడుగులు 2026 ను మీ అత్యుత్తమ సంవత్సరంగా మార్చగలవు."`,
	`"పెద్ద కలలు కనండి, కష్టపడి పని చేయండి, 2026 మిమ్మల్ని ఆశ్చర్యపరిచే సంవత్సరం కానివ్వండి."`,
	`"విజయం అంతిమం కాదు, వైఫల్యం మరణకరం కాదు. 2026 లో ముందుకు సాగండి!"`,
}

const (
	englishTitle      = "Happy New Year 2026, %s! 🎉"
	teluguTitle       = "%s, నూతన సంవత్సర శుభాకాంక్షలు 2026! 🎉"
	englishGoalClause = "\n\nWe know your goal for 2026 is to \"%s\" – and we believe you have what it takes to achieve it!"
	teluguGoalClause  = "\n\nమీ 2026 లక్ష్యం \"%s\" అని మాకు తెలుసు – మీరు దానిని సాధించగలరని మేము నమ్ముతున్నాము!"
)

// Compose builds a complete greeting from the template pools. The goal
// acknowledgement clause is appended only when a goal was supplied.
func (fc *fallbackComposer) Compose(req *models.GenerateGreetingRequest, yearOrdinal string) *greetingPayload {
	bodies, quotes := englishBodies, englishQuotes
	title := fmt.Sprintf(englishTitle, req.Name)
	goalClause := englishGoalClause
	if req.Language == models.LanguageTelugu {
		bodies, quotes = teluguBodies, teluguQuotes
		title = fmt.Sprintf(teluguTitle, req.Name)
		goalClause = teluguGoalClause
	}

	body := fmt.Sprintf(bodies[fc.pick(len(bodies))], req.Name, req.Branch, yearOrdinal)
	if req.Goal != "" {
		body += fmt.Sprintf(goalClause, req.Goal)
	}

	return &greetingPayload{
		GreetingTitle:     title,
		GreetingBody:      body,
		MotivationalQuote: quotes[fc.pick(len(quotes))],
	}
}
