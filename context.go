/* Copyright (C) 2021 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package mutspectrum

/* -------------------------------------------------------------------------- */

import "fmt"

/* trinucleotide mutation contexts
 * -------------------------------------------------------------------------- */

// Base substitutions in canonical order. Variants with a purine reference
// allele are mapped to the reverse complement strand, so that every
// substitution is reported relative to a pyrimidine reference allele.
var Substitutions = []string{"C>A", "C>G", "C>T", "T>A", "T>C", "T>G"}

// The 96 trinucleotide mutation contexts in canonical order, i.e. grouped
// by substitution, with the flanking bases in lexicographic order:
//   A[C>A]A, A[C>A]C, ..., T[T>G]G, T[T>G]T
// All count matrices use this list as row names. The order is fixed and
// must not depend on the data.
var TrinucleotideContexts = enumerateTrinucleotideContexts()

var trinucleotideContextIndex = indexTrinucleotideContexts()

func enumerateTrinucleotideContexts() []string {
  bases  := []byte{'A', 'C', 'G', 'T'}
  result := []string{}
  for _, substitution := range Substitutions {
    for _, b1 := range bases {
      for _, b3 := range bases {
        result = append(result, fmt.Sprintf("%c[%s]%c", b1, substitution, b3))
      }
    }
  }
  return result
}

func indexTrinucleotideContexts() map[string]int {
  result := make(map[string]int)
  for i, context := range TrinucleotideContexts {
    result[context] = i
  }
  return result
}

/* -------------------------------------------------------------------------- */

// Occurrence counts of the 96 trinucleotide mutation contexts for a single
// sample. The categories are carried explicitly so that consumers can
// verify them against the canonical list.
type ContextCounts struct {
  Categories []string
  Counts     []int
}

func NewContextCounts() ContextCounts {
  categories := make([]string, len(TrinucleotideContexts))
  copy(categories, TrinucleotideContexts)
  return ContextCounts{categories, make([]int, len(categories))}
}

// Total number of classified variants.
func (counts ContextCounts) Sum() int {
  result := 0
  for _, c := range counts.Counts {
    result += c
  }
  return result
}

// Count of the given category label.
func (counts ContextCounts) At(category string) (int, error) {
  i, ok := trinucleotideContextIndex[category]
  if !ok {
    return 0, fmt.Errorf("At(): invalid category `%s'", category)
  }
  return counts.Counts[i], nil
}

/* -------------------------------------------------------------------------- */

// A function classifying the variants of one sample into the 96
// trinucleotide mutation contexts. Implementations must be deterministic
// and free of side effects, since classifiers are executed concurrently
// on many samples.
type ContextClassifier func(sample Sample, sequences StringSet) (ContextCounts, error)

/* -------------------------------------------------------------------------- */

// Classify a single substitution given the trinucleotide centered on the
// variant position. The context argument must have length three with the
// reference allele in the middle. Returns the index of the matching
// category in the canonical TrinucleotideContexts list.
func ClassifyTrinucleotide(context []byte, alt byte) (int, error) {
  nucleotides := NucleotideAlphabet{}

  if len(context) != 3 {
    return -1, fmt.Errorf("ClassifyTrinucleotide(): invalid context length `%d'", len(context))
  }
  normalize := func(b byte) (byte, error) {
    c, err := nucleotides.Code(b)
    if err != nil {
      return 0xFF, err
    }
    return nucleotides.Decode(c)
  }
  b1, err := normalize(context[0]); if err != nil {
    return -1, err
  }
  b2, err := normalize(context[1]); if err != nil {
    return -1, err
  }
  b3, err := normalize(context[2]); if err != nil {
    return -1, err
  }
  ba, err := normalize(alt); if err != nil {
    return -1, err
  }
  if b2 == ba {
    return -1, fmt.Errorf("ClassifyTrinucleotide(): reference and alternate allele are identical")
  }
  // report substitutions relative to a pyrimidine reference allele
  if purine, _ := nucleotides.IsPurine(b2); purine {
    b1, b3 = b3, b1
    b1, _  = nucleotides.Complement(b1)
    b2, _  = nucleotides.Complement(b2)
    b3, _  = nucleotides.Complement(b3)
    ba, _  = nucleotides.Complement(ba)
  }
  label := fmt.Sprintf("%c[%c>%c]%c", b1, b2, ba, b3)

  i, ok := trinucleotideContextIndex[label]
  if !ok {
    return -1, fmt.Errorf("ClassifyTrinucleotide(): invalid category `%s'", label)
  }
  return i, nil
}

// Classify all variants of the given sample. The sequences argument must
// provide the reference sequence of every chromosome the sample has
// variants on. The declared reference allele of each variant is checked
// against the reference sequence; classification of the whole sample fails
// on the first variant with a mismatching reference allele, a position
// without full trinucleotide context, or an unknown chromosome.
func ClassifyContexts(sample Sample, sequences StringSet) (ContextCounts, error) {
  nucleotides := NucleotideAlphabet{}

  counts := NewContextCounts()
  n      := sample.Variants.Length()
  ref    := sample.Variants.GetMetaStr("ref")
  alt    := sample.Variants.GetMetaStr("alt")
  if len(ref) != n || len(alt) != n {
    return ContextCounts{}, fmt.Errorf("variants have no ref and alt meta columns")
  }
  for i := 0; i < n; i++ {
    seqname  := sample.Variants.Seqnames[i]
    position := sample.Variants.Ranges  [i].From

    sequence, ok := sequences[seqname]
    if !ok {
      return ContextCounts{}, fmt.Errorf("sequence `%s' not found", seqname)
    }
    if position < 1 || position+2 > len(sequence) {
      return ContextCounts{}, fmt.Errorf("variant at %s:%d has no trinucleotide context", seqname, position)
    }
    context := sequence[position-1:position+2]
    // check declared reference allele against the reference sequence
    b, err := nucleotides.Code(context[1])
    if err != nil {
      return ContextCounts{}, fmt.Errorf("variant at %s:%d: %v", seqname, position, err)
    }
    b, err  = nucleotides.Decode(b)
    if err != nil {
      return ContextCounts{}, fmt.Errorf("variant at %s:%d: %v", seqname, position, err)
    }
    if len(ref[i]) != 1 || len(alt[i]) != 1 {
      return ContextCounts{}, fmt.Errorf("variant at %s:%d is not a single nucleotide variant", seqname, position)
    }
    r, err := nucleotides.Code(ref[i][0])
    if err != nil {
      return ContextCounts{}, fmt.Errorf("variant at %s:%d: %v", seqname, position, err)
    }
    r, err  = nucleotides.Decode(r)
    if err != nil {
      return ContextCounts{}, fmt.Errorf("variant at %s:%d: %v", seqname, position, err)
    }
    if b != r {
      return ContextCounts{}, fmt.Errorf("variant at %s:%d: declared reference allele `%c' does not match reference sequence `%c'", seqname, position, r, b)
    }
    j, err := ClassifyTrinucleotide(context, alt[i][0])
    if err != nil {
      return ContextCounts{}, fmt.Errorf("variant at %s:%d: %v", seqname, position, err)
    }
    counts.Counts[j]++
  }
  return counts, nil
}
