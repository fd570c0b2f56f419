package agent

import (
	"context"
	"fmt"

	"github.com/etnz/rentals"
	"github.com/etnz/rentals/renderer"
	"google.golang.org/genai"
)

// Source gives read access to the collection.
type Source interface {
	All() []rentals.Property
}

// NewAssistant returns the expert behind `rnt assist`. It answers questions
// about the properties in src, priced in currency.
func NewAssistant(src Source, model, currency string) *Expert {
	lib := []Function{ListProperties(src, currency), Statistics(src, currency)}
	return &Expert{
		Name:      "Assistant",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You help a student compare rental properties near the UFMG campus in Belo Horizonte.
			The user recorded each candidate with its rent, ride-hailing prices, neighborhood security (1-10),
			access to the city center and leisure (1-6), access to UFMG (Easy, Acceptable, Complex, Poor)
			and two personal ratings (1-10): the ideal place and the current moment.

			Use the Tools to read the user's properties before answering, never invent a property.
			Answer in short markdown.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// ListProperties renders the collection as a markdown table, optionally
// filtered and sorted.
func ListProperties(src Source, currency string) *Func {
	const name = "ListProperties"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "ListProperties returns the user's rental properties as a markdown table.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"filter": {
						Type:        genai.TypeString,
						Description: "Keep only properties whose name or UFMG access contains this text.",
					},
					"sort": {
						Type:        genai.TypeString,
						Description: "Sort by this field, descending.",
						Enum:        rentals.SortKeyNames(),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table with one row per property.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			filter, err := stringArg(args, "filter")
			if err != nil {
				return errorResponse(id, name, err)
			}
			sort, err := stringArg(args, "sort")
			if err != nil {
				return errorResponse(id, name, err)
			}
			props := rentals.Filter(src.All(), filter)
			if sort != "" {
				key, err := rentals.ParseSortKey(sort)
				if err != nil {
					return errorResponse(id, name, err)
				}
				props = rentals.Sort(props, key, rentals.Descending)
			}
			return outputResponse(id, name, renderer.TableMarkdown(props, currency))
		},
	}
}

// Statistics renders the aggregate figures of the collection.
func Statistics(src Source, currency string) *Func {
	const name = "Statistics"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Statistics returns the number of properties, the average rent and the top pick by ideal rating.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown block with the statistics.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, renderer.StatsMarkdown(rentals.NewStats(src.All()), currency))
		},
	}
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	return s, nil
}
