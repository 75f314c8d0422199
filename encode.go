package mortgage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// A book is persisted as JSONL: one scenario per line, the "calc" property
// first to identify the calculation, then the scenario's own fields.
//
//	{"calc":"mortgage","name":"bank A","principal":200000,"rate":3.5,"term":"30y"}
//	{"calc":"apr","principal":200000,"rate":3.5,"term":"30y","originationFee":1000,"otherFees":2000}
//
// Empty lines and lines starting with '#' are ignored, so that a book can be
// hand written and commented.

// EncodeScenario writes a single scenario as one JSON line.
func EncodeScenario(w io.Writer, s Scenario) error {
	var jw jsonObjectWriter
	jw.Append("calc", s.What())
	jw.EmbedFrom(s)
	line, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode %s scenario %q: %w", s.What(), s.Label(), err)
	}
	line = append(line, '\n')
	_, err = w.Write(line)
	return err
}

// EncodeBook writes every scenario of the book.
func EncodeBook(w io.Writer, b *Book) error {
	for _, s := range b.scenarios {
		if err := EncodeScenario(w, s); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBook reads a stream of JSONL scenarios.
func DecodeBook(r io.Reader) (*Book, error) {
	b := NewBook()
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := DecodeScenario([]byte(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		b.Append(s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return b, nil
}

// DecodeScenario decodes a single JSON scenario, dispatching on its "calc" property.
func DecodeScenario(line []byte) (Scenario, error) {
	var identifier struct {
		Calc CalcType `json:"calc"`
	}
	if err := json.Unmarshal(line, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify calculation in %q: %w", line, err)
	}

	switch identifier.Calc {
	case CalcMortgage:
		return decodeAs[Mortgage](line)
	case CalcAPR:
		return decodeAs[LoanCost](line)
	case CalcExtra:
		return decodeAs[ExtraPayment](line)
	case CalcRefinance:
		return decodeAs[Refinance](line)
	case CalcPrincipal:
		return decodeAs[Principal](line)
	case CalcInterestOnly:
		return decodeAs[InterestOnly](line)
	case CalcAfford:
		return decodeAs[Affordability](line)
	case CalcIncome:
		return decodeAs[IncomeQualifier](line)
	case CalcPoints:
		return decodeAs[Points](line)
	case CalcTax:
		return decodeAs[TaxBenefit](line)
	case "":
		return nil, fmt.Errorf("missing %q property in %q", "calc", line)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalc, identifier.Calc)
	}
}

func decodeAs[T Scenario](line []byte) (Scenario, error) {
	var s T
	if err := json.Unmarshal(line, &s); err != nil {
		return nil, fmt.Errorf("invalid %s scenario: %w", s.What(), err)
	}
	return s, nil
}

// LoadBook reads the book file. A missing file is an empty book.
func LoadBook(filename string) (*Book, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book %q: %w", filename, err)
	}
	defer f.Close()

	b, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book %q: %w", filename, err)
	}
	return b, nil
}

// AppendScenario appends a single scenario to the book file, creating it if needed.
func AppendScenario(filename string, s Scenario) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open book %q: %w", filename, err)
	}
	if err := EncodeScenario(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
