// Package batch reads seed word lists so that several words can be
// mutated in one run.
package batch
