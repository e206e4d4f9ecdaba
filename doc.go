// Package dealbook maintains an in-process warehouse of private-equity
// records (companies, deals, investment positions, investors, funds and
// valuations) and materializes two reporting perspectives over the same
// facts: the deal-centric summary, one financing round aggregated across
// all participants, and the position-centric view, one participant's stake
// in one round.
//
// The Store owns all records and their adjacency indexes; views and
// relationship lookups are pure reads. The Importer populates a store from
// external tabular sources and falls back to a synthetic generator when a
// source is unreachable or malformed.
package dealbook
