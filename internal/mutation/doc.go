// Package mutation transforms words by substituting letters within their
// phonetic class. It offers four strategies: rotating every letter or one
// random letter to its class successor, and replacing every letter or one
// random letter with a random letter of the same class. Letters in the
// exclusion set are never produced.
package mutation
