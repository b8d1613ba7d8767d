package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/marina"
	"google.golang.org/genai"
)

func testInventory(t *testing.T) *marina.Inventory {
	t.Helper()
	inv := marina.NewInventory()
	err := inv.InsertAll(
		marina.NewBoat("Brandy", marina.Ft(20), marina.SlipLocation{Number: 121}, marina.USD(31.5)),
		marina.NewBoat("Pirate", marina.Ft(30), marina.LandLocation{Bay: 'C'}, marina.USD(0)),
	)
	if err != nil {
		t.Fatalf("InsertAll() unexpected error: %v", err)
	}
	return inv
}

func call(lib Library, name string, args map[string]any) *genai.FunctionResponse {
	return lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
}

func TestLibrary(t *testing.T) {
	inv := testInventory(t)
	lib := NewLibrary([]Function{InventoryFunc(inv), BoatFunc(inv), QueryFunc(inv), RatesFunc(inv), ForecastFunc(inv)})

	testCases := []struct {
		name    string
		fn      string
		args    map[string]any
		want    string // substring of the output
		wantErr string // substring of the error
	}{
		{name: "inventory", fn: "Inventory", want: "| Brandy | 20' | slip #121 | $31.50 |"},
		{name: "boat", fn: "Boat", args: map[string]any{"name": "pirate"}, want: "Pirate is 30' long, kept at land bay C, and owes $0.00."},
		{name: "boat missing arg", fn: "Boat", wantErr: `missing argument "name"`},
		{name: "boat wrong type", fn: "Boat", args: map[string]any{"name": 3.0}, wantErr: "not a string"},
		{name: "boat unknown", fn: "Boat", args: map[string]any{"name": "Nemo"}, wantErr: "no boat with that name"},
		{name: "query", fn: "Query", args: map[string]any{"expr": "$[*].name"}, want: `["Brandy","Pirate"]`},
		{name: "query invalid", fn: "Query", args: map[string]any{"expr": "$[?("}, wantErr: "invalid query"},
		{name: "rates", fn: "Rates", want: "slip: $12.50 per foot per month"},
		{name: "forecast", fn: "Forecast", args: map[string]any{"months": 2.0}, want: "| Brandy | $31.50 | $531.50 |"},
		{name: "forecast default", fn: "Forecast", want: "| Pirate | $0.00 | $420.00 |"},
		{name: "forecast negative", fn: "Forecast", args: map[string]any{"months": -1.0}, wantErr: "must not be negative"},
		{name: "unknown", fn: "Sink", wantErr: "unknown function Sink"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := call(lib, tc.fn, tc.args)
			if resp.ID != "1" || resp.Name != tc.fn {
				t.Errorf("response ID, Name = %q, %q, want %q, %q", resp.ID, resp.Name, "1", tc.fn)
			}
			if tc.wantErr != "" {
				got, _ := resp.Response["error"].(string)
				if !strings.Contains(got, tc.wantErr) {
					t.Errorf("error = %q, want it to contain %q", got, tc.wantErr)
				}
				return
			}
			if e, ok := resp.Response["error"]; ok {
				t.Fatalf("unexpected error: %v", e)
			}
			got, _ := resp.Response["output"].(string)
			if !strings.Contains(got, tc.want) {
				t.Errorf("output = %q, want it to contain %q", got, tc.want)
			}
		})
	}
}

func TestForecastDoesNotCharge(t *testing.T) {
	inv := testInventory(t)
	forecast(inv, 3)
	b, err := inv.Boat("Brandy")
	if err != nil {
		t.Fatal(err)
	}
	if !b.Owed.Equal(marina.USD(31.5)) {
		t.Errorf("Brandy owes %v after a forecast, want $31.50", b.Owed)
	}
}

func TestExpertsDeclaration(t *testing.T) {
	inv := testInventory(t)
	experts := []*Expert{NewHarbormaster(inv), NewAccountant(inv)}
	decls := NewDeclaration(experts)
	if len(decls) != 2 {
		t.Fatalf("got %d declarations, want 2", len(decls))
	}
	for i, d := range decls {
		if d.Name != experts[i].Name {
			t.Errorf("declaration %d name = %q, want %q", i, d.Name, experts[i].Name)
		}
		if d.Parameters.Required[0] != "question" {
			t.Errorf("declaration %d does not require a question", i)
		}
	}
	a := New(nil, strings.NewReader(""), experts...)
	if got := len(a.Facilitator.Config.Tools[0].FunctionDeclarations); got != 2 {
		t.Errorf("facilitator knows %d experts, want 2", got)
	}
}
