// Package letters classifies lowercase Latin letters into the three
// phonetic classes used for word mutation: vowels, hard consonants and
// soft consonants. Each class is a fixed ordered sequence, and the order
// defines which letter follows which when a letter is rotated.
package letters
