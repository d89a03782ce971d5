package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

// ErrUnparsable marks an analysis response that did not carry the required
// JSON shape. Callers decide whether to degrade to a zeroed payload.
var ErrUnparsable = errors.New("unparsable analysis result")

const defaultVisionURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

const analysisPrompt = `Analyze this food image and provide nutrition information. Return ONLY a JSON object with the following structure:
{
  "name": "food name",
  "calories": number,
  "protein": number (in grams),
  "carbs": number (in grams),
  "fat": number (in grams),
  "serving_size": "estimated serving size",
  "confidence": number (0-100)
}

Be realistic with the nutrition values. If you can't identify the food clearly, estimate based on what you can see. Make sure all numbers are numeric values, not strings.`

// FoodAnalysis is the validated result of a vision call.
type FoodAnalysis struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"serving_size,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
}

type VisionService struct {
	apiKey string
	url    string
	client *http.Client
}

func NewVisionService() *VisionService {
	url := os.Getenv("GEMINI_API_URL")
	if url == "" {
		url = defaultVisionURL
	}
	return &VisionService{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type visionPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *visionBlob `json:"inlineData,omitempty"`
}

type visionBlob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type visionRequest struct {
	Contents []struct {
		Parts []visionPart `json:"parts"`
	} `json:"contents"`
}

type visionResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

var dataURIPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// ValidBase64Image reports whether the payload is plausible base64 image
// data, with or without a data-URI prefix.
func ValidBase64Image(data string) bool {
	clean := dataURIPrefix.ReplaceAllString(data, "")
	if clean == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(clean)
	return err == nil
}

// Analyze sends a base64-encoded JPEG to the vision model and strict-parses
// the nutrition estimate out of its text response.
func (s *VisionService) Analyze(base64Image string) (*FoodAnalysis, error) {
	if !ValidBase64Image(base64Image) {
		return nil, fmt.Errorf("%w: invalid base64 image data", ErrUnparsable)
	}
	clean := dataURIPrefix.ReplaceAllString(base64Image, "")

	var req visionRequest
	req.Contents = append(req.Contents, struct {
		Parts []visionPart `json:"parts"`
	}{
		Parts: []visionPart{
			{Text: analysisPrompt},
			{InlineData: &visionBlob{MIMEType: "image/jpeg", Data: clean}},
		},
	})

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Post(
		fmt.Sprintf("%s?key=%s", s.url, s.apiKey),
		"application/json",
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to call vision API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read vision response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API status %d: %s", resp.StatusCode, string(body))
	}

	var vr visionResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	if len(vr.Candidates) == 0 || len(vr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty candidate list", ErrUnparsable)
	}

	return ParseAnalysis(vr.Candidates[0].Content.Parts[0].Text)
}

// ParseAnalysis turns the model's free text into a validated FoodAnalysis.
// The name and all four macro fields must be present and numeric; anything
// else is an ErrUnparsable, never a silently-defaulted struct. Negative
// numbers clamp to zero.
func ParseAnalysis(text string) (*FoodAnalysis, error) {
	jsonText := strings.TrimSpace(text)
	jsonText = strings.ReplaceAll(jsonText, "```json", "")
	jsonText = strings.ReplaceAll(jsonText, "```", "")

	start := strings.Index(jsonText, "{")
	end := strings.LastIndex(jsonText, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object in response", ErrUnparsable)
	}
	jsonText = jsonText[start : end+1]

	var raw struct {
		Name        *string  `json:"name"`
		Calories    *float64 `json:"calories"`
		Protein     *float64 `json:"protein"`
		Carbs       *float64 `json:"carbs"`
		Fat         *float64 `json:"fat"`
		ServingSize string   `json:"serving_size"`
		Confidence  float64  `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	if raw.Name == nil || *raw.Name == "" {
		return nil, fmt.Errorf("%w: missing food name", ErrUnparsable)
	}
	if raw.Calories == nil || raw.Protein == nil || raw.Carbs == nil || raw.Fat == nil {
		return nil, fmt.Errorf("%w: missing nutrition fields", ErrUnparsable)
	}

	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}

	return &FoodAnalysis{
		Name:        *raw.Name,
		Calories:    clamp(*raw.Calories),
		Protein:     clamp(*raw.Protein),
		Carbs:       clamp(*raw.Carbs),
		Fat:         clamp(*raw.Fat),
		ServingSize: raw.ServingSize,
		Confidence:  raw.Confidence,
	}, nil
}
