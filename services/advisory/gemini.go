package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"zora/models"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiService implements Service against the Gemini API.
type GeminiService struct {
	model  *genai.GenerativeModel
	store  ContextStore
	logger *zap.Logger
}

// NewGeminiService builds the advisory service. A missing API key is allowed;
// calls will then fail and callers fall back to "no suggestion".
func NewGeminiService(apiKey string, store ContextStore, logger *zap.Logger) *GeminiService {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiService{model: model, store: store, logger: logger}
}

func (s *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// stripFences removes markdown code fences the model sometimes wraps JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

type rankedSelection struct {
	ID            string `json:"id"`
	Justification string `json:"justification"`
	Category      string `json:"category"`
	IsRecommended bool   `json:"isRecommended"`
}

// RankOffers asks the model to shortlist the top offers. Selections that do
// not match a submitted offer are dropped rather than invented.
func (s *GeminiService) RankOffers(ctx context.Context, req *models.TravelRequest, offers []models.PartnerOffer) ([]models.PresentedOffer, error) {
	summary, err := json.Marshal(offers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode offers: %w", err)
	}

	prompt := fmt.Sprintf(`You are Zora, a travel architect. A client wants a %s trip to %s for %d travelers with a budget of %.0f.
Analyze these agency offers and choose the top 2: %s
Return ONLY a JSON array: [{"id": "<offer id>", "justification": "why this offer", "category": "short label like Best Value or Premium Choice", "isRecommended": true|false}]
Mark exactly one selection with "isRecommended": true.`,
		req.ComfortLevel, req.To, req.Travelers, req.Budget, string(summary))

	raw, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var selections []rankedSelection
	if err := json.Unmarshal([]byte(stripFences(raw)), &selections); err != nil {
		return nil, fmt.Errorf("failed to parse ranking response: %w", err)
	}

	byID := make(map[string]models.PartnerOffer, len(offers))
	for _, o := range offers {
		byID[o.ID] = o
	}

	var presented []models.PresentedOffer
	for _, sel := range selections {
		offer, ok := byID[sel.ID]
		if !ok {
			s.logger.Warn("Ranking referenced unknown offer", zap.String("offerId", sel.ID))
			continue
		}
		presented = append(presented, models.PresentedOffer{
			PartnerOffer:  offer,
			Justification: sel.Justification,
			Category:      sel.Category,
			IsRecommended: sel.IsRecommended,
		})
	}
	return presented, nil
}

// GenerateItinerary produces a markdown travel guide for the request.
func (s *GeminiService) GenerateItinerary(ctx context.Context, req *models.TravelRequest) (string, error) {
	prompt := fmt.Sprintf("Generate a professional travel guide for %s for %d people departing %s. Format in Markdown.",
		req.To, req.Travelers, req.DepartureDate)
	out, err := s.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RadarAlert scans the request for operational risks.
func (s *GeminiService) RadarAlert(ctx context.Context, req *models.TravelRequest) (*models.RadarAlert, error) {
	prompt := fmt.Sprintf(`Analyze this travel request for operational risks: destination %s, budget %.0f, departure %s, status %s.
Return ONLY JSON: {"message": "string", "category": "Financial" | "Operational" | "UrgentFollowUp", "severity": "High" | "Medium" | "Low"}`,
		req.To, req.Budget, req.DepartureDate, req.Status)

	raw, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var alert models.RadarAlert
	if err := json.Unmarshal([]byte(stripFences(raw)), &alert); err != nil {
		return nil, fmt.Errorf("failed to parse radar alert: %w", err)
	}
	if alert.Message == "" {
		return nil, nil
	}
	return &alert, nil
}

// OfferAdvice gives a partner strategic bidding advice for the request.
func (s *GeminiService) OfferAdvice(ctx context.Context, req *models.TravelRequest) (string, error) {
	prompt := fmt.Sprintf("As Zora Expert, provide strategic bidding advice to a travel agent for a %s trip to %s with a client budget of %.0f.",
		req.ComfortLevel, req.To, req.Budget)
	out, err := s.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ExpertChat continues the request's expert conversation, keeping the rolling
// transcript in the context store.
func (s *GeminiService) ExpertChat(ctx context.Context, requestID, message string) (string, error) {
	turns, err := s.store.Load(ctx, requestID)
	if err != nil {
		s.logger.Warn("Failed to load expert chat context", zap.Error(err))
		turns = nil
	}

	var transcript strings.Builder
	for _, t := range turns {
		fmt.Fprintf(&transcript, "%s: %s\n", t.Role, t.Text)
	}

	prompt := fmt.Sprintf(`You are Zora Expert, a strategic travel consultant.
Conversation so far:
%s
user: %s
Answer the user's last message helpfully and concisely.`, transcript.String(), message)

	reply, err := s.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)

	turns = append(turns, ChatTurn{Role: "user", Text: message}, ChatTurn{Role: "model", Text: reply})
	if err := s.store.Save(ctx, requestID, turns); err != nil {
		s.logger.Warn("Failed to save expert chat context", zap.Error(err))
	}
	return reply, nil
}
