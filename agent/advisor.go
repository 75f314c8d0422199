package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/etnz/mortgage"
	"github.com/etnz/mortgage/docs"
	"github.com/etnz/mortgage/renderer"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is buying a home, or owns one and considers refinancing. Figures must come from
			the Advisor, never compute a payment or a rate yourself.
			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded on Google Search for market news.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is a housing market researcher, aware of lending practices, regulations,
		and the latest news about rates and home prices.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert of the housing and mortgage markets, you leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
			`}}},
		},
	}
}

// NewAdvisor returns the expert running the calculators with the given
// assumptions. feed is optional, it gives access to market rates.
func NewAdvisor(a mortgage.Assumptions, feed *mortgage.RateFeed, logger *zap.Logger) *Expert {
	lib := Calculators(a)
	if feed != nil {
		lib = append(lib, MarketRate(feed))
	}
	readme, err := docs.GetTopic("readme")
	if err != nil {
		readme = ""
	}

	return &Expert{
		Name: "Advisor",
		Description: `This is the mortgage Advisor. It runs the mortgage calculators: payment and amortization,
		APR, extra payments, refinance, affordability, required income, discount points, tax benefit.
		Ask the Advisor for every figure.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a mortgage advisor. You use the Tools to compute every figure you give,
			and you explain the results in plain words. Amounts are in ` + a.Currency + `.
			Rates are in percent (3.5 means 3.5%), terms are strings like "30y" or "15y6m".

			Here is the manual of the calculators:

			` + readme}}},
		},
		Library: NewLibrary(lib),
		Logger:  logger,
	}
}

// Func implements a simple Function
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// param is a calculator input as declared to the model.
type param struct {
	name     string // the scenario JSON property
	typ      genai.Type
	desc     string
	required bool
}

var (
	principal = param{"principal", genai.TypeNumber, "Loan amount.", true}
	rate      = param{"rate", genai.TypeNumber, "Annual interest rate in percent, 3.5 means 3.5%.", true}
	term      = param{"term", genai.TypeString, `Loan term: "30y", "360m", "15y6m". Defaults to 30y.`, false}
	down      = param{"downPayment", genai.TypeNumber, "Down payment.", false}
	tax       = param{"propertyTax", genai.TypeNumber, "Annual property tax.", false}
	insurance = param{"insurance", genai.TypeNumber, "Annual home insurance.", false}
	debts     = param{"monthlyDebts", genai.TypeNumber, "Other monthly debt payments.", false}
)

// calculators declares every calculation to the model.
var calculators = []struct {
	calc   mortgage.CalcType
	desc   string
	params []param
}{
	{mortgage.CalcMortgage, "Monthly payment, total interest and yearly amortization of a fixed rate loan.",
		[]param{principal, rate, term}},
	{mortgage.CalcAPR, "Annual percentage rate of a loan, including its fees.",
		[]param{principal, rate, term,
			{"originationFee", genai.TypeNumber, "Origination fee.", false},
			{"otherFees", genai.TypeNumber, "Other closing fees in the finance charge.", false}}},
	{mortgage.CalcExtra, "Interest and months saved by paying extra principal every month.",
		[]param{principal, rate, term, {"extra", genai.TypeNumber, "Extra principal paid every month.", true}}},
	{mortgage.CalcRefinance, "Payments, monthly savings, break-even and lifetime savings of a refinance.",
		[]param{
			{"balance", genai.TypeNumber, "Remaining balance of the current loan.", true},
			{"currentRate", genai.TypeNumber, "Rate of the current loan in percent.", true},
			{"currentTerm", genai.TypeString, "Remaining term of the current loan.", true},
			{"newRate", genai.TypeNumber, "Rate of the new loan in percent.", true},
			{"newTerm", genai.TypeString, "Term of the new loan.", true},
			{"closingCosts", genai.TypeNumber, "Closing costs of the new loan.", false}}},
	{mortgage.CalcPrincipal, "Loan amount a monthly payment can repay.",
		[]param{{"payment", genai.TypeNumber, "Monthly principal and interest payment.", true}, rate, term}},
	{mortgage.CalcInterestOnly, "Payments of a loan whose first months pay only interest.",
		[]param{principal, rate, term, {"interestOnly", genai.TypeString, `Length of the interest-only period, e.g. "5y".`, true}}},
	{mortgage.CalcAfford, "Most expensive home an income can buy under the debt-to-income ratios.",
		[]param{{"annualIncome", genai.TypeNumber, "Gross annual income.", true}, debts, down, rate, term, tax, insurance}},
	{mortgage.CalcIncome, "Yearly income required to buy a home.",
		[]param{{"price", genai.TypeNumber, "Home price.", true}, down, rate, term, tax, insurance,
			{"hoa", genai.TypeNumber, "Annual HOA dues.", false}, debts}},
	{mortgage.CalcPoints, "Savings and break-even of buying discount points.",
		[]param{principal, rate, term, {"points", genai.TypeNumber, "Number of points, each costs 1% of the loan.", true}}},
	{mortgage.CalcTax, "First year tax savings of the mortgage interest deduction.",
		[]param{{"price", genai.TypeNumber, "Home price.", true}, down, rate, term, tax}},
}

// Calculators returns one function per calculation. Each answers the
// markdown report of the calculation.
func Calculators(a mortgage.Assumptions) []Function {
	functions := make([]Function, 0, len(calculators))
	for _, c := range calculators {
		schema := &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}
		for _, p := range c.params {
			schema.Properties[p.name] = &genai.Schema{Type: p.typ, Description: p.desc}
			if p.required {
				schema.Required = append(schema.Required, p.name)
			}
		}
		name := functionName(c.calc)
		calc := c.calc
		functions = append(functions, &Func{
			Decl: &genai.FunctionDeclaration{
				Name:        name,
				Description: c.desc,
				Parameters:  schema,
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown report of the calculation.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				report, err := evaluate(calc, args, a)
				if err != nil {
					return failure(id, name, err)
				}
				return success(id, name, report)
			},
		})
	}
	return functions
}

// functionName turns a calculation into a valid function name.
func functionName(c mortgage.CalcType) string {
	name := []byte("calc_")
	for _, r := range []byte(c) {
		if r == '-' {
			r = '_'
		}
		name = append(name, r)
	}
	return string(name)
}

// evaluate decodes the arguments as a scenario of calc and renders its result.
func evaluate(calc mortgage.CalcType, args map[string]any, a mortgage.Assumptions) (string, error) {
	fields := map[string]any{"term": "30y"}
	if calc == mortgage.CalcRefinance {
		fields = map[string]any{}
	}
	for k, v := range args {
		fields[k] = v
	}
	fields["calc"] = calc

	line, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	s, err := mortgage.DecodeScenario(line)
	if err != nil {
		return "", err
	}
	if err := mortgage.Validate(s); err != nil {
		return "", err
	}
	result, err := s.Evaluate(a)
	if err != nil {
		return "", err
	}
	return renderer.Markdown(result), nil
}

// MarketRate returns a function reading the latest average rates.
func MarketRate(feed *mortgage.RateFeed) Function {
	const name = "market_rate"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Latest weekly average fixed mortgage rate in the US (Freddie Mac survey, published on FRED).",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"term": {Type: genai.TypeString, Description: `Loan term, "30y" or "15y". Defaults to 30y.`},
				},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "The rate and the week it was published."},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			t := mortgage.Years(30)
			if s, ok := args["term"].(string); ok && s != "" {
				var err error
				if t, err = mortgage.ParseTerm(s); err != nil {
					return failure(id, name, err)
				}
			}
			m, err := feed.Latest(ctx, mortgage.SeriesFor(t))
			if err != nil {
				return failure(id, name, err)
			}
			return success(id, name, fmt.Sprintf("%s on the week of %s (%s)", m.Rate, m.On, m.Series))
		},
	}
}
