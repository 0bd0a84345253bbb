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

import "bytes"
import "fmt"

/* -------------------------------------------------------------------------- */

// Trinucleotide mutation count matrix. Rows are the 96 canonical mutation
// contexts in the order given by TrinucleotideContexts, columns are samples
// in the order they were passed to the builder. The column sums equal the
// number of classified variants per sample.
type MutationMatrix struct {
  Categories []string
  Samples    []string
  Counts     [][]int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewMutationMatrix(samples []string) MutationMatrix {
  categories := make([]string, len(TrinucleotideContexts))
  copy(categories, TrinucleotideContexts)

  names := make([]string, len(samples))
  copy(names, samples)

  counts := make([][]int, len(categories))
  for i := 0; i < len(categories); i++ {
    counts[i] = make([]int, len(samples))
  }
  return MutationMatrix{categories, names, counts}
}

/* -------------------------------------------------------------------------- */

// Number of rows and columns.
func (matrix MutationMatrix) Dims() (int, int) {
  return len(matrix.Categories), len(matrix.Samples)
}

// Sum of the j-th column, i.e. the number of classified variants of the
// j-th sample.
func (matrix MutationMatrix) ColumnSum(j int) int {
  result := 0
  for i := 0; i < len(matrix.Categories); i++ {
    result += matrix.Counts[i][j]
  }
  return result
}

// Count of the given category and sample.
func (matrix MutationMatrix) At(category, sample string) (int, error) {
  i, ok := trinucleotideContextIndex[category]
  if !ok {
    return 0, fmt.Errorf("At(): invalid category `%s'", category)
  }
  for j, name := range matrix.Samples {
    if name == sample {
      return matrix.Counts[i][j], nil
    }
  }
  return 0, fmt.Errorf("At(): sample `%s' not found", sample)
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (matrix MutationMatrix) String() string {
  var buffer bytes.Buffer

  buffer.WriteString(fmt.Sprintf("%10s", "category"))
  for _, name := range matrix.Samples {
    buffer.WriteString(fmt.Sprintf(" %10s", name))
  }
  for i := 0; i < len(matrix.Categories); i++ {
    buffer.WriteString(fmt.Sprintf("\n%10s", matrix.Categories[i]))
    for j := 0; j < len(matrix.Samples); j++ {
      buffer.WriteString(fmt.Sprintf(" %10d", matrix.Counts[i][j]))
    }
  }
  return buffer.String()
}
