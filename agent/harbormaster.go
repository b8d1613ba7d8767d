package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/marina"
	"github.com/etnz/marina/docs"
	"github.com/etnz/marina/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the front desk of a marina. You are in charge of the conversation and of solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user is the marina manager. They ask about the boats kept at the marina, where they are,
			and how much their owners owe.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
			You cannot change the inventory: tell the user which mcs command would do it.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewHarbormaster returns the expert that knows where every boat is.
func NewHarbormaster(inv *marina.Inventory) *Expert {
	lib := []Function{InventoryFunc(inv), BoatFunc(inv), QueryFunc(inv)}
	return &Expert{
		Name: "Harbormaster",
		Description: `This is the Harbormaster. It knows every boat kept at the marina:
		its name, its length, where it is (slip, land bay, trailer or storage space) and what its owner owes.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the harbormaster of a marina.
				You know how to use the Tools to find the boats, where they are kept and their balance.
				Boat names are matched ignoring case. Several boats can share a name, the first one is used.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewAccountant returns the expert that knows the marina's billing.
func NewAccountant(inv *marina.Inventory) *Expert {
	lib := []Function{RatesFunc(inv), ForecastFunc(inv)}
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. It knows the monthly rates and
		can forecast what every owner will owe in the coming months.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the accountant of a marina. This is how the marina bills its customers:

				` + must(docs.GetTopic("billing"))}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// InventoryFunc lists all boats.
func InventoryFunc(inv *marina.Inventory) *Func {
	const name = "Inventory"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Inventory lists every boat kept at the marina, sorted by name.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the boats with their length, location and balance, followed by totals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return success(id, name, renderer.RenderInventory(renderer.NewInventory("Inventory", inv)))
		},
	}
}

// BoatFunc describes a single boat.
func BoatFunc(inv *marina.Inventory) *Func {
	const name = "Boat"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Boat describes the boat with the given name.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {
						Type:        genai.TypeString,
						Description: "The boat name, case is ignored.",
					},
				},
				Required: []string{"name"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The boat's length, location and balance.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			boat, err := stringArg(args, "name")
			if err != nil {
				return failure(id, name, err)
			}
			b, err := inv.Boat(boat)
			if err != nil {
				return failure(id, name, err)
			}
			return success(id, name, fmt.Sprintf("%s is %s' long, kept at %s, and owes %s.",
				b.Name, b.Length.Whole(), renderer.Where(b.Location), b.Owed))
		},
	}
}

// QueryFunc evaluates a JSONPath expression on the inventory.
func QueryFunc(inv *marina.Inventory) *Func {
	const name = "Query"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Query evaluates a JSONPath expression on the inventory document.

			` + must(docs.GetTopic("query")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"expr": {
						Type:        genai.TypeString,
						Description: "The JSONPath expression, e.g. $[?(@.kind == \"slip\")].name",
					},
				},
				Required: []string{"expr"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The JSON encoded result.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			expr, err := stringArg(args, "expr")
			if err != nil {
				return failure(id, name, err)
			}
			v, err := inv.Query(expr)
			if err != nil {
				return failure(id, name, err)
			}
			out, err := json.Marshal(v)
			if err != nil {
				return failure(id, name, err)
			}
			return success(id, name, string(out))
		},
	}
}

// RatesFunc lists the monthly rates.
func RatesFunc(inv *marina.Inventory) *Func {
	const name = "Rates"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Rates lists the monthly rate per foot of boat length, for each kind of place.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "One line per kind of place with its rate.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var b strings.Builder
			for _, k := range marina.Kinds {
				fmt.Fprintf(&b, "%s: %s per foot per month\n", k, inv.Rates().Rate(k))
			}
			return success(id, name, b.String())
		},
	}
}

// ForecastFunc computes the balances after some months, without charging them.
func ForecastFunc(inv *marina.Inventory) *Func {
	const name = "Forecast"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Forecast computes what every owner will owe after a number of months if nobody pays.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"months": {
						Type:        genai.TypeInteger,
						Description: "The number of months, 1 by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the boats with their balance now and after the months.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			months, err := intArg(args, "months", 1)
			if err != nil {
				return failure(id, name, err)
			}
			if months < 0 {
				return failure(id, name, fmt.Errorf("months must not be negative, got %d", months))
			}
			return success(id, name, forecast(inv, months))
		},
	}
}

func forecast(inv *marina.Inventory, months int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "| Name | Owes | In %d months |\n|:-----|-----:|-----:|\n", months)
	total := marina.M(0, inv.Currency())
	for _, boat := range inv.All() {
		later := boat.Owed
		for range months {
			later = later.Add(inv.Rates().Accrual(boat).In(inv.Currency()))
		}
		total = total.Add(later)
		fmt.Fprintf(&b, "| %s | %s | %s |\n", boat.Name, boat.Owed, later)
	}
	fmt.Fprintf(&b, "\nTotal in %d months: %s\n", months, total)
	return b.String()
}
