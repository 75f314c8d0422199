// Package mortgage provides a single, validated implementation of the
// arithmetic behind home-loan calculators: level payments, amortization
// schedules, APR, refinance and discount points break-even, affordability and
// income qualification, and first-year tax benefits.
//
// The core functionalities include:
//   - Payment Engine: the level monthly payment and its inverse, with zero
//     rates handled exactly instead of dividing by zero.
//   - Amortization: month by month schedules, with optional interest-only
//     months and extra principal, summarized by month, quarter or year.
//   - APR: the annual percentage rate of a loan with fees, solved by Newton's
//     method with a bounded iteration budget and an explicit non-convergence
//     error.
//   - Calculators: one input type per calculation (a Scenario) and one result
//     record, computed under a set of Assumptions (ratios, tax bracket, ...).
//   - Scenario Book: scenarios persisted one per line in a JSONL file, so that
//     a set of what-ifs can be versioned and evaluated again.
//   - Market Rates: the latest average mortgage rates from the FRED API.
//
// This package serves as the foundational logic for the `mcs` command-line
// tool.
package mortgage
