package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/etnz/rentals"
	"google.golang.org/genai"
)

// Summary is the projection of a property sent to the advisory delegate.
type Summary struct {
	Name        string  `json:"name"`
	Rent        string  `json:"rent"`
	Security    int     `json:"security"`
	UFMGAccess  string  `json:"ufmgAccess"`
	Ideal       int     `json:"idealRating"`
	Moment      int     `json:"currentMomentRating"`
	AverageUber float64 `json:"averageUber"`
}

// Summaries projects props for the advisory prompt, formatting rents in
// currency.
func Summaries(props []rentals.Property, currency string) []Summary {
	out := make([]Summary, 0, len(props))
	for _, p := range props {
		out = append(out, Summary{
			Name:        p.Name,
			Rent:        p.RentTotal.Format(currency),
			Security:    p.NeighborhoodSecurity,
			UFMGAccess:  p.UFMGAccess.String(),
			Ideal:       p.IdealRating,
			Moment:      p.CurrentMomentRating,
			AverageUber: p.AverageUber().Float64(),
		})
	}
	return out
}

// Advisor writes a recommendation over the whole collection.
type Advisor struct {
	Models   Models
	Model    string
	Timeout  time.Duration
	Currency string
	Logger   *slog.Logger
}

const advisoryInstruction = `You are a real-estate consultant helping a student choose a rental near the UFMG campus in Belo Horizonte.
Analyse the list of properties below, they are the candidates the user recorded.

Answer in markdown with exactly these four sections:

**Top 3**
Rank the three best properties, with a short rationale for each.

**Best value for money**
The property that offers the most for its rent.

**Alerts**
Properties whose combination of rating, security and price looks suspicious or inconsistent.

**Verdict**
One line with your final recommendation.

Be concise and direct.`

// Advise returns the raw narrative of the delegate. It works with any number
// of properties, including one.
func (a *Advisor) Advise(ctx context.Context, props []rentals.Property) (string, error) {
	if a == nil || a.Models == nil {
		return "", ErrNotConfigured
	}
	data, err := json.MarshalIndent(Summaries(props, a.Currency), "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAdvisoryUnavailable, err)
	}
	log := a.Logger
	if log == nil {
		log = slog.Default()
	}
	narrative, err := generate(ctx, a.Models, log, modelOrDefault(a.Model), a.Timeout,
		"Properties:\n"+string(data),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: advisoryInstruction}}},
		})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAdvisoryUnavailable, err)
	}
	return narrative, nil
}
