// Package recommend produces tax optimization recommendation texts. It
// calls an OpenRouter-hosted chat model when an API key is configured and
// falls back to rule-derived static recommendations otherwise. A failing
// upstream call never fails the request; it only degrades to the fallback.
package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"taxpilot/internal/services/taxengine"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "meta-llama/llama-3.1-8b-instruct:free"
	defaultTimeout = 10 * time.Second

	// Upper bound on recommendations handed back to the client.
	maxRecommendations = 4
)

// Service generates recommendation texts for an analyzed company.
type Service interface {
	Generate(ctx context.Context, profile taxengine.CompanyProfile, score taxengine.HealthScore, analysis taxengine.SavingsAnalysis) []string
}

// Config holds the OpenRouter client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type service struct {
	config Config
	client *http.Client
}

// NewService creates a recommendation service. An empty API key disables
// the upstream call entirely; only fallback recommendations are produced.
func NewService(config Config) Service {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}
	return &service{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *service) Generate(ctx context.Context, profile taxengine.CompanyProfile, score taxengine.HealthScore, analysis taxengine.SavingsAnalysis) []string {
	if s.config.APIKey == "" {
		return Fallback(profile, analysis)
	}

	recs, err := s.generateUpstream(ctx, profile, score, analysis)
	if err != nil {
		log.Printf("recommendation upstream failed, using fallback: %v", err)
		return Fallback(profile, analysis)
	}
	if len(recs) == 0 {
		return Fallback(profile, analysis)
	}
	return recs
}

func (s *service) generateUpstream(ctx context.Context, profile taxengine.CompanyProfile, score taxengine.HealthScore, analysis taxengine.SavingsAnalysis) ([]string, error) {
	payload := chatRequest{
		Model: s.config.Model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a Swiss tax expert providing actionable recommendations for SME tax optimization.",
			},
			{
				Role:    "user",
				Content: buildPrompt(profile, score, analysis),
			},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("upstream returned no choices")
	}

	return parseNumbered(parsed.Choices[0].Message.Content), nil
}

func buildPrompt(profile taxengine.CompanyProfile, score taxengine.HealthScore, analysis taxengine.SavingsAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this Swiss company's tax situation and provide 3-5 specific, actionable recommendations:\n\n")
	fmt.Fprintf(&b, "Company Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", profile.Name)
	fmt.Fprintf(&b, "- Legal Form: %s\n", profile.LegalForm)
	fmt.Fprintf(&b, "- Canton: %s\n", profile.Canton)
	fmt.Fprintf(&b, "- Revenue: CHF %s\n", taxengine.FormatCHF(profile.Revenue))
	fmt.Fprintf(&b, "- Profit: CHF %s\n", taxengine.FormatCHF(profile.Profit))
	fmt.Fprintf(&b, "- Employees: %d\n", profile.Employees)
	fmt.Fprintf(&b, "- Industry: %s\n\n", profile.Industry)
	fmt.Fprintf(&b, "Tax Health Analysis:\n")
	fmt.Fprintf(&b, "- Overall Score: %d/100 (%s)\n", score.Score, score.Grade)
	fmt.Fprintf(&b, "- Potential Savings: CHF %s\n", taxengine.FormatCHF(analysis.Savings))
	fmt.Fprintf(&b, "- Current Tax Burden: CHF %s\n", taxengine.FormatCHF(analysis.CurrentTax))
	fmt.Fprintf(&b, "- Best Canton: %s (CHF %s)\n\n", analysis.BestCanton, taxengine.FormatCHF(analysis.BestTax))
	if len(score.Issues) > 0 {
		fmt.Fprintf(&b, "Key Issues Identified:\n")
		for _, issue := range score.Issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Provide numbered recommendations. Focus on: canton optimization, legal structure, timing strategies, and compliance improvements.\n")
	return b.String()
}

var numberedLine = regexp.MustCompile(`^\d+\.`)

// parseNumbered extracts numbered recommendations from the model response.
// Very short lines are discarded as noise.
func parseNumbered(content string) []string {
	var recommendations []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !numberedLine.MatchString(trimmed) {
			continue
		}
		rec := strings.TrimSpace(numberedLine.ReplaceAllString(trimmed, ""))
		if len(rec) > 10 {
			recommendations = append(recommendations, rec)
		}
	}
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
