// Package ledgerdash derives the figures of a personal finance dashboard from
// already parsed double-entry ledger transactions.
//
// The core functionalities include:
//   - Daily changes: per day, per account net amounts (AccumulateDailyChanges).
//   - Balances: dense, forward-filled end of day balances over a date range
//     (BuildBalanceMap, BalancesAsOf).
//   - Hierarchies: colon-delimited account paths turned into trees with a
//     bottom-up rollup of values (BuildHierarchy, ChildAccounts).
//   - Period figures: income, expense, balance and savings rate of a month or
//     any range, daily series and monthly trends.
//   - Flow diagrams: a balanced income to expense graph where a synthetic node
//     absorbs any surplus or deficit.
//   - Treemaps: asset and liability hierarchies at the end of a month.
//
// Accounts are classified by their path prefix only (see Prefixes).
//
// Everything is computed from a Snapshot, an immutable set of transactions. A
// Snapshot never changes: reloading the ledger produces a new one. All the
// results are plain values that can be marshalled to JSON.
//
// This package serves as the foundational logic for the `ldash` command-line
// tool and its HTTP API.
package ledgerdash
