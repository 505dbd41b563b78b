package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/date"
	"github.com/etnz/ledgerdash/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

func testLibrary() Library {
	d := decimal.RequireFromString
	snap := ledgerdash.NewSnapshot([]ledgerdash.Transaction{
		{Date: "2025-03-01", Payee: "ACME", Lines: []ledgerdash.Line{
			{Account: "Assets:Bank:Checking", Amount: d("3000")},
			{Account: "Income:Salary", Amount: d("-3000")},
		}},
		{Date: "2025-03-05", Payee: "Landlord", Lines: []ledgerdash.Line{
			{Account: "Expenses:Housing:Rent", Amount: d("1200")},
			{Account: "Assets:Bank:Checking", Amount: d("-1200")},
		}},
	}, ledgerdash.DefaultOptions())
	today := func() date.Date { return date.New(2025, 3, 20) }
	return NewLibrary(AnalystFunctions(snap, renderer.NewFormatter("$"), today))
}

func call(lib Library, name string, args map[string]any) *genai.FunctionResponse {
	return lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
}

func TestAnalystFunctions(t *testing.T) {
	lib := testLibrary()
	tests := []struct {
		name string
		fn   string
		args map[string]any
		want []string
	}{
		{"key figures of a month", "KeyFigures", map[string]any{"month": "2025-03"}, []string{"$3,000.00", "$1,200.00", "60.00%"}},
		{"key figures default to this month", "KeyFigures", nil, []string{"Key Figures for 2025-03"}},
		{"key figures of a range", "KeyFigures", map[string]any{"from": "2025-03-02", "to": "2025-03-31"}, []string{"$1,200.00", "0.00%"}},
		{"trend", "Trend", map[string]any{"months": float64(2)}, []string{"2025-02", "2025-03"}},
		{"cash flow", "CashFlow", map[string]any{"month": "2025-03"}, []string{"Salary", "Housing", "Balance"}},
		{"net worth", "NetWorth", map[string]any{}, []string{"Net Worth on 2025-03-20", "$1,800.00"}},
		{"balances", "Balances", map[string]any{"date": "2025-03-01"}, []string{"Assets:Bank:Checking", "$3,000.00"}},
		{"transactions", "Transactions", map[string]any{"month": "2025-03"}, []string{"Landlord", "ACME"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(lib, tt.fn, tt.args)
			if resp.Name != tt.fn || resp.ID != "1" {
				t.Errorf("response = %s/%s, want %s/1", resp.Name, resp.ID, tt.fn)
			}
			out, ok := resp.Response["output"].(string)
			if !ok {
				t.Fatalf("no output in %v", resp.Response)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output does not contain %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestAnalystFunctions_Errors(t *testing.T) {
	lib := testLibrary()
	tests := []struct {
		name string
		fn   string
		args map[string]any
	}{
		{"unknown function", "Nope", nil},
		{"invalid date", "KeyFigures", map[string]any{"month": "soon"}},
		{"not a string", "NetWorth", map[string]any{"month": 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(lib, tt.fn, tt.args)
			if _, ok := resp.Response["error"].(string); !ok {
				t.Errorf("response = %v, want an error", resp.Response)
			}
		})
	}
}

func TestExpertDeclaration(t *testing.T) {
	analyst := NewAnalyst("model", ledgerdash.NewSnapshot(nil, ledgerdash.DefaultOptions()), renderer.NewFormatter("$"))
	facilitator := NewFacilitator("model", analyst, NewResearcher("model"))

	decls := facilitator.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 || decls[0].Name != "Analyst" || decls[1].Name != "Researcher" {
		t.Errorf("facilitator declares %v, want the Analyst and the Researcher", decls)
	}
	if got := len(analyst.Config.Tools[0].FunctionDeclarations); got != 6 {
		t.Errorf("analyst declares %d functions, want 6", got)
	}

	if _, err := analyst.Ask(context.Background(), &genai.Part{Text: "hi"}); err == nil {
		t.Error("Ask() on an expert not started succeeded, want an error")
	}
}
