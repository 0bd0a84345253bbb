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
import "runtime"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// Check a classification result against the canonical category list. The
// categories of every sample must be identical, otherwise the resulting
// matrix would have no well defined row identity.
func checkContextCounts(sample Sample, counts ContextCounts) error {
  if len(counts.Categories) != len(TrinucleotideContexts) {
    return fmt.Errorf("sample `%s': classifier returned %d categories, expected %d", sample.Name, len(counts.Categories), len(TrinucleotideContexts))
  }
  if len(counts.Counts) != len(TrinucleotideContexts) {
    return fmt.Errorf("sample `%s': classifier returned %d counts, expected %d", sample.Name, len(counts.Counts), len(TrinucleotideContexts))
  }
  for i := 0; i < len(TrinucleotideContexts); i++ {
    if counts.Categories[i] != TrinucleotideContexts[i] {
      return fmt.Errorf("sample `%s': classifier returned category `%s' at position %d, expected `%s'", sample.Name, counts.Categories[i], i, TrinucleotideContexts[i])
    }
    if counts.Counts[i] < 0 {
      return fmt.Errorf("sample `%s': classifier returned negative count for category `%s'", sample.Name, counts.Categories[i])
    }
  }
  return nil
}

/* -------------------------------------------------------------------------- */

func classifySamplesSequential(samples []Sample, sequences StringSet, classifier ContextClassifier) ([]ContextCounts, error) {
  results := make([]ContextCounts, len(samples))

  for i := 0; i < len(samples); i++ {
    counts, err := classifier(samples[i], sequences)
    if err != nil {
      return nil, fmt.Errorf("classifying sample `%s' failed: %v", samples[i].Name, err)
    }
    results[i] = counts
  }
  return results, nil
}

func classifySamplesParallel(samples []Sample, sequences StringSet, classifier ContextClassifier, threads int) ([]ContextCounts, error) {
  results := make([]ContextCounts, len(samples))

  pool := threadpool.New(threads, 100*threads)
  g    := pool.NewJobGroup()

  // each job reads its own sample and the shared reference sequences and
  // writes to its own slot in the results slice, so that column order
  // follows the input order and not the completion order
  if err := pool.AddRangeJob(0, len(samples), g, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if erf() != nil {
      // a sibling job already failed, the batch is void
      return nil
    }
    counts, err := classifier(samples[i], sequences)
    if err != nil {
      return fmt.Errorf("classifying sample `%s' failed: %v", samples[i].Name, err)
    }
    results[i] = counts
    return nil
  }); err != nil {
    return nil, err
  }
  if err := pool.Wait(g); err != nil {
    return nil, err
  }
  return results, nil
}

/* -------------------------------------------------------------------------- */

// Construct the trinucleotide mutation count matrix for a batch of
// samples. Samples are classified independently with the given classifier;
// if classifier is nil, ClassifyContexts is used. The threads argument
// determines the number of samples classified in parallel; if threads is
// smaller than one, all available processing units are used, if threads is
// one, samples are classified sequentially in the calling goroutine. The
// result does not depend on the number of threads.
//
// If the classification of any sample fails, an error naming that sample
// is returned and all results are discarded; a matrix with missing columns
// is never returned.
func BuildMutationMatrix(samples []Sample, sequences StringSet, classifier ContextClassifier, threads int) (MutationMatrix, error) {
  var results []ContextCounts
  var err       error

  if classifier == nil {
    classifier = ClassifyContexts
  }
  if threads < 1 {
    threads = runtime.NumCPU()
  }
  if threads == 1 || len(samples) <= 1 {
    results, err = classifySamplesSequential(samples, sequences, classifier)
  } else {
    results, err = classifySamplesParallel  (samples, sequences, classifier, threads)
  }
  if err != nil {
    return MutationMatrix{}, err
  }
  // category identity is fixed in advance; verify every result against
  // the canonical list before assembling the matrix
  for i := 0; i < len(samples); i++ {
    if err := checkContextCounts(samples[i], results[i]); err != nil {
      return MutationMatrix{}, err
    }
  }
  names := make([]string, len(samples))
  for i := 0; i < len(samples); i++ {
    names[i] = samples[i].Name
  }
  matrix := NewMutationMatrix(names)

  for j := 0; j < len(results); j++ {
    for i := 0; i < len(matrix.Categories); i++ {
      matrix.Counts[i][j] = results[j].Counts[i]
    }
  }
  return matrix, nil
}
