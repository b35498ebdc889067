// Package generator drives the mutation loop. Starting from a seed word it
// applies the configured strategy a fixed number of times, feeding every
// generated word into the next iteration, and writes each result to the
// output decorated with the configured prefix and suffix.
package generator
