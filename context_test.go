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

//import "fmt"
import "testing"

/* -------------------------------------------------------------------------- */

func TestTrinucleotideContexts1(t *testing.T) {

  if len(TrinucleotideContexts) != 96 {
    t.Error("TestTrinucleotideContexts1 failed!")
  }
  if TrinucleotideContexts[0] != "A[C>A]A" {
    t.Error("TestTrinucleotideContexts1 failed!")
  }
  if TrinucleotideContexts[95] != "T[T>G]T" {
    t.Error("TestTrinucleotideContexts1 failed!")
  }
  // all labels must be unique
  m := make(map[string]struct{})
  for _, context := range TrinucleotideContexts {
    m[context] = struct{}{}
  }
  if len(m) != 96 {
    t.Error("TestTrinucleotideContexts1 failed!")
  }
}

func TestClassifyTrinucleotide1(t *testing.T) {

  // pyrimidine reference allele
  if i, err := ClassifyTrinucleotide([]byte("ACA"), 'T'); err != nil {
    t.Error(err)
  } else {
    if TrinucleotideContexts[i] != "A[C>T]A" {
      t.Error("TestClassifyTrinucleotide1 failed!")
    }
  }
  // purine reference allele, mapped to the reverse complement
  if i, err := ClassifyTrinucleotide([]byte("TGA"), 'A'); err != nil {
    t.Error(err)
  } else {
    if TrinucleotideContexts[i] != "T[C>T]A" {
      t.Error("TestClassifyTrinucleotide1 failed!")
    }
  }
  if i, err := ClassifyTrinucleotide([]byte("CAC"), 'G'); err != nil {
    t.Error(err)
  } else {
    if TrinucleotideContexts[i] != "G[T>C]G" {
      t.Error("TestClassifyTrinucleotide1 failed!")
    }
  }
  // lower case input
  if i, err := ClassifyTrinucleotide([]byte("aca"), 't'); err != nil {
    t.Error(err)
  } else {
    if TrinucleotideContexts[i] != "A[C>T]A" {
      t.Error("TestClassifyTrinucleotide1 failed!")
    }
  }
}

func TestClassifyTrinucleotide2(t *testing.T) {

  // unresolved base in the context
  if _, err := ClassifyTrinucleotide([]byte("NCA"), 'T'); err == nil {
    t.Error("TestClassifyTrinucleotide2 failed!")
  }
  // reference and alternate allele are identical
  if _, err := ClassifyTrinucleotide([]byte("ACA"), 'C'); err == nil {
    t.Error("TestClassifyTrinucleotide2 failed!")
  }
  // invalid context length
  if _, err := ClassifyTrinucleotide([]byte("ACAC"), 'T'); err == nil {
    t.Error("TestClassifyTrinucleotide2 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestClassifyContexts1(t *testing.T) {

  sequences := NewStringSet(
    []string{"chr1"},
    [][]byte{[]byte("ACACACACACACACACACAC")})

  variants := NewGRanges(
    []string{"chr1", "chr1", "chr1"},
    []int{1, 3, 6},
    []int{2, 4, 7},
    nil)
  variants.AddMeta("ref", []string{"C", "C", "A"})
  variants.AddMeta("alt", []string{"T", "G", "G"})

  counts, err := ClassifyContexts(NewSample("test", variants), sequences)
  if err != nil {
    t.Error(err)
  }
  if counts.Sum() != 3 {
    t.Error("TestClassifyContexts1 failed!")
  }
  if c, err := counts.At("A[C>T]A"); err != nil || c != 1 {
    t.Error("TestClassifyContexts1 failed!")
  }
  if c, err := counts.At("A[C>G]A"); err != nil || c != 1 {
    t.Error("TestClassifyContexts1 failed!")
  }
  // A>G at context CAC maps to G[T>C]G on the reverse complement strand
  if c, err := counts.At("G[T>C]G"); err != nil || c != 1 {
    t.Error("TestClassifyContexts1 failed!")
  }
}

func TestClassifyContexts2(t *testing.T) {

  sequences := NewStringSet(
    []string{"chr1"},
    [][]byte{[]byte("ACACACACACACACACACAC")})

  // declared reference allele does not match the reference sequence
  variants := NewGRanges([]string{"chr1"}, []int{1}, []int{2}, nil)
  variants.AddMeta("ref", []string{"G"})
  variants.AddMeta("alt", []string{"T"})

  if _, err := ClassifyContexts(NewSample("test", variants), sequences); err == nil {
    t.Error("TestClassifyContexts2 failed!")
  }
  // unknown chromosome
  variants  = NewGRanges([]string{"chr2"}, []int{1}, []int{2}, nil)
  variants.AddMeta("ref", []string{"C"})
  variants.AddMeta("alt", []string{"T"})

  if _, err := ClassifyContexts(NewSample("test", variants), sequences); err == nil {
    t.Error("TestClassifyContexts2 failed!")
  }
  // variant at the first position has no trinucleotide context
  variants  = NewGRanges([]string{"chr1"}, []int{0}, []int{1}, nil)
  variants.AddMeta("ref", []string{"A"})
  variants.AddMeta("alt", []string{"T"})

  if _, err := ClassifyContexts(NewSample("test", variants), sequences); err == nil {
    t.Error("TestClassifyContexts2 failed!")
  }
}

func TestClassifyContexts3(t *testing.T) {

  sequences := NewStringSet(
    []string{"chr1"},
    [][]byte{[]byte("ACACACACACACACACACAC")})

  // a sample without variants yields all-zero counts, not an error
  counts, err := ClassifyContexts(NewSample("empty", GRanges{}), sequences)
  if err != nil {
    t.Error(err)
  }
  if counts.Sum() != 0 {
    t.Error("TestClassifyContexts3 failed!")
  }
  if len(counts.Counts) != 96 {
    t.Error("TestClassifyContexts3 failed!")
  }
}
