package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/etnz/rentals"
	"google.golang.org/genai"
)

// DefaultTimeout bounds every delegated call.
const DefaultTimeout = 60 * time.Second

// Extractor turns a free-form description of a property into a Draft.
type Extractor struct {
	Models  Models
	Model   string
	Timeout time.Duration
	Logger  *slog.Logger
}

const extractionGuidance = `Analyse the following text describing a rental property near the UFMG campus (Belo Horizonte) and extract structured data.

Inference rules:
- When a value is not explicit, make a reasonable estimate from the context instead of leaving it blank.
- neighborhoodSecurity must be between 1 and 10.
- centerAccess must be between 1 and 6.
- leisure must be between 1 and 6.
- idealRating and currentMomentRating must be estimated from the tone of the text, between 1 and 10.
- uberPriceDay and uberPriceNight must be estimated when not given.
- ufmgAccess is one of Easy, Acceptable, Complex, Poor.

The text is:
`

// extractionSchema constrains the delegate output to the property fields.
var extractionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":                 {Type: genai.TypeString, Description: "A short name or title for the property"},
		"link":                 {Type: genai.TypeString, Description: "Link to the listing, or empty"},
		"neighborhoodSecurity": {Type: genai.TypeNumber, Description: "1 to 10"},
		"centerAccess":         {Type: genai.TypeNumber, Description: "1 to 6"},
		"ufmgAccess":           {Type: genai.TypeString, Enum: rentals.AccessNames()},
		"busQuantity":          {Type: genai.TypeString, Description: "Description of the bus lines available"},
		"leisure":              {Type: genai.TypeNumber, Description: "1 to 6"},
		"uberPriceDay":         {Type: genai.TypeNumber},
		"uberPriceNight":       {Type: genai.TypeNumber},
		"rentTotal":            {Type: genai.TypeNumber, Description: "Total monthly rent"},
		"idealRating":          {Type: genai.TypeNumber, Description: "1 to 10"},
		"currentMomentRating":  {Type: genai.TypeNumber, Description: "1 to 10"},
		"notes":                {Type: genai.TypeString, Description: "Summary of the main points"},
	},
	Required: []string{"name", "rentTotal", "ufmgAccess"},
}

// Extract asks the delegate to read text and returns the fields it found,
// clamped into their ranges.
//
// On failure the returned Draft is empty and the error is ErrNotConfigured or
// wraps ErrExtractionUnavailable: callers must not merge anything.
func (e *Extractor) Extract(ctx context.Context, text string) (rentals.Draft, error) {
	if e == nil || e.Models == nil {
		return rentals.Draft{}, ErrNotConfigured
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return rentals.Draft{}, fmt.Errorf("%w: empty description", ErrExtractionUnavailable)
	}

	raw, err := generate(ctx, e.Models, e.logger(), modelOrDefault(e.Model), e.Timeout,
		extractionGuidance+text,
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   extractionSchema,
		})
	if err != nil {
		return rentals.Draft{}, fmt.Errorf("%w: %w", ErrExtractionUnavailable, err)
	}

	d, err := decodeDraft(raw)
	if err != nil {
		return rentals.Draft{}, fmt.Errorf("%w: %w", ErrExtractionUnavailable, err)
	}
	d.Clamp()
	return d, nil
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// decodeDraft parses the delegate output and checks the fields it must
// always return.
func decodeDraft(raw string) (rentals.Draft, error) {
	var d rentals.Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return rentals.Draft{}, fmt.Errorf("malformed response: %w", err)
	}
	var missing []string
	if d.Name == nil || strings.TrimSpace(*d.Name) == "" {
		missing = append(missing, "name")
	}
	if d.RentTotal == nil {
		missing = append(missing, "rentTotal")
	}
	if d.UFMGAccess == nil {
		missing = append(missing, "ufmgAccess")
	}
	if len(missing) > 0 {
		return rentals.Draft{}, fmt.Errorf("response is missing %s", strings.Join(missing, ", "))
	}
	return d, nil
}

// generate sends a single prompt and returns the text of the answer. The call
// is bounded by timeout, DefaultTimeout when zero.
func generate(ctx context.Context, models Models, log *slog.Logger, model string, timeout time.Duration, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	resp, err := models.GenerateContent(ctx, model, genai.Text(prompt), config)
	log.Debug("delegate call", "model", model, "duration", time.Since(start), "error", err)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out := strings.TrimSpace(text(resp))
	if out == "" {
		return "", fmt.Errorf("empty response from %s", model)
	}
	return out, nil
}
