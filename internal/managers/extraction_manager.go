package managers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"calendar-assistant/internal/schemas"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const extractionModel = "gemini-2.5-flash"

const extractionPromptTemplate = `
Today is %s.
Extract calendar event details from this message.
Return only JSON in this exact format:
{
  "title": "Event title",
  "start": "YYYY-MM-DDTHH:MM:SS",
  "end": "YYYY-MM-DDTHH:MM:SS",
  "location": "Location name"
}

If any value is not present in the message, return an empty string for that field.
Message: %s
`

// ExtractionMgr is an interface that outlines the contract for extracting
// event details from free-form user text.
type ExtractionMgr interface {
	ExtractEventDetails(ctx context.Context, text string) (schemas.EventDetails, error)
}

// ExtractionManager is a concrete implementation of the ExtractionMgr
// interface backed by the Gemini API.
type ExtractionManager struct {
	client *genai.Client
}

// NewExtractionManager creates an ExtractionManager with a Gemini client
// authenticated by the given API key.
func NewExtractionManager(ctx context.Context, apiKey string) (ExtractionMgr, error) {
	log.Info("Initializing extraction manager")

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error creating generative client: %w", err)
	}

	return &ExtractionManager{client: client}, nil
}

// ExtractEventDetails asks the model for title, start, end and location of
// the event described in text. Fields the model could not find come back as
// empty strings; unparsable model output yields all-empty details rather
// than an error, so the frontend can re-prompt the user.
func (em *ExtractionManager) ExtractEventDetails(ctx context.Context, text string) (schemas.EventDetails, error) {
	model := em.client.GenerativeModel(extractionModel)
	prompt := fmt.Sprintf(extractionPromptTemplate, time.Now().Format(time.RFC3339), text)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return schemas.EventDetails{}, fmt.Errorf("error generating content: %w", err)
	}

	return ParseModelJSON(collectText(resp)), nil
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return sb.String()
}

// ParseModelJSON strips markdown code fences from the model output and
// decodes the JSON payload. Anything unparsable yields empty details.
func ParseModelJSON(raw string) schemas.EventDetails {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.Trim(cleaned, "`")
		cleaned = strings.TrimSpace(cleaned)
		cleaned = strings.TrimPrefix(cleaned, "json")
		cleaned = strings.TrimSpace(cleaned)
	}

	var details schemas.EventDetails
	if err := json.Unmarshal([]byte(cleaned), &details); err != nil {
		log.Warn("Model returned unparsable event details: ", err)
		return schemas.EventDetails{}
	}

	return details
}
