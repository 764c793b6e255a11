package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"tourwise/internal/models/db_models"
	"tourwise/internal/models/request_models"
	"tourwise/internal/models/response_models"
	"tourwise/pkg/utils"
)

const (
	OutcomeGenerated = "generated"
	OutcomeFallback  = "fallback"

	fallbackTitle   = "AI Draft Itinerary"
	fallbackSummary = "This is a scaffold generated locally because no LLM credentials were provided. Plug in a provider to get richer content."

	chatbotNoClientAnswer = "Placeholder answer for: %q. Configure LLM credentials to enable real responses."
	chatbotErrorAnswer    = "We could not contact the AI assistant right now. Please try again in a few minutes."

	plannerSystemPrompt = "You are TourWise, an expert AI travel planner known for accuracy and local insights. You always answer with a single JSON object."
	conciergeSystem     = "You are TourWise's travel concierge. Answer the travel question clearly and concisely."
)

// GenerationResult carries a plan and whether it came from the model or the local scaffold.
type GenerationResult struct {
	Plan    db_models.ItineraryPlan
	Outcome string
	Reason  string
}

func (r GenerationResult) Degraded() bool { return r.Outcome == OutcomeFallback }

type ItineraryGenerator interface {
	Generate(ctx context.Context, prompt string, prefs db_models.Preferences) GenerationResult
	Answer(ctx context.Context, question string, poi *request_models.ChatbotContext) response_models.ChatbotAnswer
}

type itineraryGenerator struct {
	client  utils.TextGenerator
	timeout time.Duration
}

// NewItineraryGenerator accepts a nil client; every call then degrades to the local scaffold.
func NewItineraryGenerator(client utils.TextGenerator, timeout time.Duration) ItineraryGenerator {
	if client == nil {
		log.Warn("no LLM credentials configured, itinerary generation uses the offline scaffold")
	}
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &itineraryGenerator{client: client, timeout: timeout}
}

func (g *itineraryGenerator) Generate(ctx context.Context, prompt string, prefs db_models.Preferences) GenerationResult {
	if g.client == nil {
		return fallbackResult(prompt, prefs, "llm not configured")
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.Complete(callCtx, plannerSystemPrompt, buildItineraryPrompt(prompt, prefs))
	if err != nil {
		log.WithError(err).WithField("provider", g.client.Provider()).Error("LLM request failed, returning fallback plan")
		return fallbackResult(prompt, prefs, err.Error())
	}

	plan, err := parsePlan(raw)
	if err != nil {
		log.WithError(err).Warn("LLM output unparseable, returning fallback plan")
		return fallbackResult(prompt, prefs, err.Error())
	}
	log.WithFields(log.Fields{
		"provider": g.client.Provider(),
		"days":     len(plan.Days),
		"stops":    plan.TotalStops(),
	}).Info("itinerary plan generated")
	return GenerationResult{Plan: plan, Outcome: OutcomeGenerated}
}

func parsePlan(raw string) (db_models.ItineraryPlan, error) {
	var plan db_models.ItineraryPlan
	payload, err := utils.ExtractJSONObject(raw)
	if err != nil {
		return plan, err
	}
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return plan, fmt.Errorf("decode plan: %w", err)
	}
	return plan, nil
}

func fallbackResult(prompt string, prefs db_models.Preferences, reason string) GenerationResult {
	return GenerationResult{
		Plan:    buildFallbackPlan(prompt, prefs),
		Outcome: OutcomeFallback,
		Reason:  reason,
	}
}

func fallbackDuration(prompt string, prefs db_models.Preferences) int {
	if prefs.DurationDays != nil && *prefs.DurationDays > 0 {
		return *prefs.DurationDays
	}
	if n := extractDayCount(prompt); n > 0 {
		return n
	}
	return 1
}

func buildFallbackPlan(prompt string, prefs db_models.Preferences) db_models.ItineraryPlan {
	duration := fallbackDuration(prompt, prefs)

	excerpt := prompt
	if r := []rune(prompt); len(r) > 60 {
		excerpt = string(r[:60])
	}

	tags := utils.SanitizeList(prefs.TravelStyles)
	if len(tags) == 0 {
		tags = []string{"general"}
	}

	days := make([]db_models.Day, 0, duration)
	for d := 1; d <= duration; d++ {
		days = append(days, db_models.Day{
			DayNumber: d,
			Title:     fmt.Sprintf("Day %d", d),
			Summary:   "Replace with AI-proposed narrative.",
			Stops: []db_models.Stop{
				{
					ExternalID:  fmt.Sprintf("poi-%d-1", d),
					Name:        fmt.Sprintf("Signature Experience Day %d", d),
					Description: fmt.Sprintf("Auto-generated highlight informed by prompt: %s...", excerpt),
				},
				{
					ExternalID:  fmt.Sprintf("poi-%d-2", d),
					Name:        fmt.Sprintf("Local Favorite Day %d", d),
					Description: "Placeholder stop. Replace with POI search results.",
				},
			},
		})
	}

	return db_models.ItineraryPlan{
		Title:        fallbackTitle,
		Summary:      fallbackSummary,
		DurationDays: duration,
		Budget:       &db_models.Budget{Currency: "USD", Amount: float64(150 * duration)},
		Tags:         tags,
		Days:         days,
	}
}

var (
	numericDayPattern = regexp.MustCompile(`\b(\d{1,2})[\s-]*(?:days?|ngày)\b`)
	writtenDayPattern = regexp.MustCompile(`\b(one|two|three|four|five|six|seven|eight|nine|ten)[\s-]*days?\b`)
	writtenNumbers    = map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	}
)

// extractDayCount reads an explicit trip length from free text. 0 means none found.
func extractDayCount(prompt string) int {
	lower := strings.ToLower(prompt)

	if m := numericDayPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 30 {
			return n
		}
	}
	if m := writtenDayPattern.FindStringSubmatch(lower); m != nil {
		return writtenNumbers[m[1]]
	}
	if strings.Contains(lower, "weekend") {
		return 2
	}
	if strings.Contains(lower, "a week") || strings.Contains(lower, "one week") {
		return 7
	}
	return 0
}

func buildItineraryPrompt(prompt string, prefs db_models.Preferences) string {
	var b strings.Builder

	b.WriteString("Create a structured itinerary tailored to the traveler.\n\n")

	duration := 0
	if prefs.DurationDays != nil {
		duration = *prefs.DurationDays
	}
	if duration > 0 {
		fmt.Fprintf(&b, "DURATION CONSTRAINT: Create an itinerary for EXACTLY %d DAYS. You MUST generate Day 1 through Day %d.\n", duration, duration)
	} else {
		b.WriteString("DURATION INSTRUCTION: Analyze the user prompt carefully for duration keywords (e.g. \"one week\", \"2 days\", \"weekend\").\n")
		b.WriteString("- If a duration is explicitly mentioned in the prompt, use that EXACT duration.\n")
		b.WriteString("- If NO duration is mentioned, create a highly optimized 1-DAY itinerary.\n")
	}
	b.WriteString("IMPORTANT: Keep descriptions concise (max 2 sentences). IF THE TRIP IS 4+ DAYS, LIMIT TO 2-3 STOPS PER DAY. ")
	b.WriteString("You MUST generate an entry for EVERY SINGLE DAY requested. Do NOT bunch stops into fewer days.\n\n")

	b.WriteString("RULES FOR GOOGLE PLACES COMPATIBILITY:\n")
	b.WriteString("1. Every stop must be a real point of interest that can be found on Google Maps.\n")
	b.WriteString("2. Use the exact, official name of the place (e.g. \"Louvre Museum\", not \"Visit the art museum\").\n")
	b.WriteString("3. If you cannot verify a specific venue, use a nearby landmark, square or street as the name and describe the activity in the description.\n")
	b.WriteString("4. Never invent business names.\n")
	b.WriteString("5. For lunch and dinner stops, name a specific real restaurant and put dish recommendations in the notes.\n")
	multiDay := duration > 1 || (duration == 0 && extractDayCount(prompt) > 1)
	if multiDay {
		b.WriteString("6. Suggest a real, specific hotel in each day's \"accommodation\" object.\n")
	}

	b.WriteString("\nRespond ONLY with JSON that matches this shape:\n")
	b.WriteString(`{
  "title": string,
  "summary": string,
  "durationDays": number,
  "budget": { "currency": string, "amount": number, "perPerson"?: number, "notes"?: string },
  "tags": string[],
  "days": [
    {
      "dayNumber": number,
      "title"?: string,
      "summary"?: string,
`)
	if multiDay {
		b.WriteString(`      "accommodation"?: { "name": string, "address": string, "notes": string },
`)
	}
	b.WriteString(`      "stops": [
        {
          "name": string,
          "description"?: string,
          "location": { "city": string, "country": string, "address": string, "geo": { "lat": number, "lng": number } },
          "startTime"?: string,
          "endTime"?: string,
          "notes"?: string
        }
      ]
    }
  ]
}
`)
	b.WriteString("Do not add arrivals and departures as itinerary stops.\n")
	fmt.Fprintf(&b, "Brief: %s\n", prompt)

	prefsJSON, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		prefsJSON = []byte("{}")
	}
	fmt.Fprintf(&b, "Preferences JSON: %s", prefsJSON)
	return b.String()
}

type chatbotReply struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

func (g *itineraryGenerator) Answer(ctx context.Context, question string, poi *request_models.ChatbotContext) response_models.ChatbotAnswer {
	if g.client == nil {
		return response_models.ChatbotAnswer{Answer: fmt.Sprintf(chatbotNoClientAnswer, question), Fallback: true}
	}

	contextBlock := "No additional context provided."
	if poi != nil {
		if raw, err := json.MarshalIndent(poi, "", "  "); err == nil {
			contextBlock = string(raw)
		}
	}
	prompt := fmt.Sprintf("Respond ONLY with JSON like { \"answer\": string, \"sources\"?: string[] }.\nQuestion: %s\nContext: %s", question, contextBlock)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.Complete(callCtx, conciergeSystem, prompt)
	if err != nil {
		log.WithError(err).Error("chatbot request failed, returning fallback message")
		return response_models.ChatbotAnswer{Answer: chatbotErrorAnswer, Fallback: true}
	}

	var reply chatbotReply
	payload, err := utils.ExtractJSONObject(raw)
	if err == nil {
		err = json.Unmarshal([]byte(payload), &reply)
	}
	if err != nil || strings.TrimSpace(reply.Answer) == "" {
		log.WithError(err).Warn("chatbot output unparseable, returning fallback message")
		return response_models.ChatbotAnswer{Answer: chatbotErrorAnswer, Fallback: true}
	}
	return response_models.ChatbotAnswer{Answer: reply.Answer, Sources: reply.Sources}
}
