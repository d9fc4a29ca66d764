// Package orderflow provides the order ledger for a small merchandise
// business: customers place orders, staff record cost and sale prices,
// track fulfillment and payment, and review monthly profit and volume
// trends.
//
// The core functionalities include:
//   - Order Record Model: the canonical twelve-column schema, with
//     defensive coercion of quantities, prices, statuses and dates.
//   - Dual Persistence: a local CSV file acting as the offline baseline,
//     and an optional spreadsheet mirror kept consistent by a full
//     replace after every mutation.
//   - Ledger Service: the single orchestration point for all mutations,
//     enforcing "local write always happens; remote replication happens
//     when a mirror is configured".
//   - Aggregation: pure derivation of dashboard totals, monthly rollups
//     and insights (best month, best-selling item) from a snapshot.
//   - Import/Export: CSV and XLSX boundary conversion with a strict
//     header contract.
//
// This package serves as the foundational logic for the `oflow`
// command-line tool.
package orderflow
