package agent

import (
	"context"
	"fmt"

	"github.com/etnz/ledgerdash"
	"github.com/etnz/ledgerdash/date"
	"github.com/etnz/ledgerdash/docs"
	"github.com/etnz/ledgerdash/renderer"
	"google.golang.org/genai"
)

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// NewFacilitator returns the expert the user talks to, delegating to experts.
func NewFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They keep context of your previous questions.

			The user wants to understand their spending, income and savings. Devise a plan of
			questions to ask the experts and answer in markdown.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded on Google Search.
func NewResearcher(model string) *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `An expert of personal finance. Ask the Researcher for general knowledge,
		recent information or advice that does not depend on the user's ledger.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an expert in personal finance: budgeting, saving, debt and taxes.
			Leverage Google Search to ground your assertions.
		`),
		},
	}
}

// NewAnalyst returns an expert answering from the figures of snap.
func NewAnalyst(model string, snap *ledgerdash.Snapshot, f renderer.Formatter) *Expert {
	lib := AnalystFunctions(snap, f, date.Today)
	return &Expert{
		Name: "Analyst",
		Description: `The Analyst reads the user's ledger. Ask the Analyst about income, expenses,
		savings rate, cash flow, net worth, balances or transactions over any period.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are the analyst of the user's ledger. Use the Tools to compute the figures you
			are asked about, never guess them. Income is shown as positive amounts.

			` + mustTopic("ledger")),
		},
		Library: NewLibrary(lib),
	}
}

func mustTopic(topic string) string {
	content, err := docs.Topic(topic)
	if err != nil {
		panic(err)
	}
	return content
}

// dateSchema documents a date argument.
func dateSchema(what string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeString,
		Description: what + " Today is the default.\n\n" + mustTopic("dates"),
	}
}

var markdownResponse = &genai.Schema{Type: genai.TypeString, Description: "A markdown report."}

// AnalystFunctions returns the tools of the analyst over snap.
func AnalystFunctions(snap *ledgerdash.Snapshot, f renderer.Formatter, today func() date.Date) []Function {
	rangeParams := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"month": dateSchema("A day of the month to report on."),
			"from":  dateSchema("First day of the period, overrides month."),
			"to":    dateSchema("Last day of the period, overrides month."),
		},
	}
	monthParams := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: map[string]*genai.Schema{"month": dateSchema("A day of the month to report on.")},
	}

	withRange := func(name, description string, report func(date.Range) string) Function {
		return &Func{
			Decl: &genai.FunctionDeclaration{
				Name:        name,
				Description: description,
				Parameters:  rangeParams,
				Response:    markdownResponse,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				r, err := rangeArg(args, today)
				if err != nil {
					return errorResponse(id, name, err)
				}
				return outputResponse(id, name, report(r))
			},
		}
	}

	keyFigures := withRange("KeyFigures", "Income, expense, balance and savings rate of a period.",
		func(r date.Range) string { return renderer.KPIMarkdown(snap.KPI(r), f) })
	cashFlow := withRange("CashFlow", "How income categories were spent across expense categories over a period.\n\n"+mustTopic("flow"),
		func(r date.Range) string { return renderer.FlowMarkdown("Cash Flow "+r.String(), snap.Flow(r), f) })
	transactions := withRange("Transactions", "The transactions of a period, newest first.",
		func(r date.Range) string {
			return renderer.TransfersMarkdown("Transactions "+r.String(), snap.Transfers(r), f)
		})

	netWorth := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "NetWorth",
			Description: "The asset and liability hierarchies at the end of a month.",
			Parameters:  monthParams,
			Response:    markdownResponse,
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			month, err := dateArg(args, "month", today)
			if err != nil {
				return errorResponse(id, "NetWorth", err)
			}
			return outputResponse(id, "NetWorth", renderer.TreemapMarkdown(snap.Treemap(month, today()), f))
		},
	}

	trend := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Trend",
			Description: "The key figures of consecutive months, oldest first.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month":  dateSchema("A day of the last month of the trend."),
					"months": {Type: genai.TypeInteger, Description: "Number of months, 12 by default."},
				},
			},
			Response: markdownResponse,
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			month, err := dateArg(args, "month", today)
			if err != nil {
				return errorResponse(id, "Trend", err)
			}
			months := 12
			if v, ok := args["months"].(float64); ok {
				months = int(v)
			}
			return outputResponse(id, "Trend", renderer.TrendMarkdown(snap.Trend(months, month), f))
		},
	}

	balances := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Balances",
			Description: "The balance of every account at the end of a day.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateSchema("The day of the balances.")},
			},
			Response: markdownResponse,
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := dateArg(args, "date", today)
			if err != nil {
				return errorResponse(id, "Balances", err)
			}
			return outputResponse(id, "Balances", renderer.BalancesMarkdown(on, snap.BalancesAsOf(on), snap.Accounts().All, f))
		},
	}

	return []Function{keyFigures, trend, cashFlow, netWorth, balances, transactions}
}

// dateArg reads the date flag args[name], today when absent.
func dateArg(args map[string]any, name string, today func() date.Date) (date.Date, error) {
	v, ok := args[name]
	if !ok {
		return today(), nil
	}
	s, ok := v.(string)
	if !ok {
		return date.Date{}, fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	if s == "" {
		return today(), nil
	}
	d, err := date.ParseFlag(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("argument %q must be a valid date, got %q. Below is the doc about the format date\n\n%s", name, s, mustTopic("dates"))
	}
	return d, nil
}

// rangeArg reads "from" and "to" if any, the month of "month" otherwise.
func rangeArg(args map[string]any, today func() date.Date) (date.Range, error) {
	_, hasFrom := args["from"]
	_, hasTo := args["to"]
	if !hasFrom && !hasTo {
		month, err := dateArg(args, "month", today)
		if err != nil {
			return date.Range{}, err
		}
		return date.Month(month), nil
	}
	from, err := dateArg(args, "from", today)
	if err != nil {
		return date.Range{}, err
	}
	to, err := dateArg(args, "to", today)
	if err != nil {
		return date.Range{}, err
	}
	return date.NewRange(from, to), nil
}
