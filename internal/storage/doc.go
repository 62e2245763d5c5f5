// Package storage groups the deal store backends.
//
// The engine talks to storage through the trade package's TransactionStore
// and the audit package's Store; the subpackages here implement both:
//
//   - memory: process-local store for throwaway sessions and tests.
//   - sqlite: durable store on a single SQLite file.
//   - bbolt: durable store on a single BoltDB file.
//
// The record subpackage holds the persisted JSON shapes the durable
// backends share.
package storage
