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

import "bufio"
import "bytes"
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Export the mutation count matrix as a whitespace separated table. The
// first line contains the sample names, the first column the category
// labels. Sample names must not contain whitespace characters for the
// table to be read back.
func (matrix MutationMatrix) WriteTable(w io.Writer, header bool) error {
  if header {
    if _, err := fmt.Fprintf(w, "%10s", "category"); err != nil {
      return err
    }
    for _, name := range matrix.Samples {
      if _, err := fmt.Fprintf(w, " %10s", name); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  for i := 0; i < len(matrix.Categories); i++ {
    if _, err := fmt.Fprintf(w, "%10s", matrix.Categories[i]); err != nil {
      return err
    }
    for j := 0; j < len(matrix.Samples); j++ {
      if _, err := fmt.Fprintf(w, " %10d", matrix.Counts[i][j]); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func (matrix MutationMatrix) ExportTable(filename string, header, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := matrix.WriteTable(w, header); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

// Import a mutation count matrix from a whitespace separated table with
// sample names on the first line and category labels in the first column.
// The category labels must list all 96 canonical mutation contexts in
// canonical order.
func (matrix *MutationMatrix) ReadTable(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)

  samples := []string{}

  // scan header
  if scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) < 1 || fields[0] != "category" {
      return fmt.Errorf("invalid mutation matrix table: missing category column")
    }
    samples = fields[1:]
  } else {
    return fmt.Errorf("invalid mutation matrix table: missing header")
  }
  result := NewMutationMatrix(samples)

  i := 0
  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != len(samples)+1 {
      return fmt.Errorf("invalid mutation matrix table: row `%s' has %d columns, expected %d", fields[0], len(fields)-1, len(samples))
    }
    if i >= len(result.Categories) {
      return fmt.Errorf("invalid mutation matrix table: too many rows")
    }
    if fields[0] != result.Categories[i] {
      return fmt.Errorf("invalid mutation matrix table: expected category `%s' but found `%s'", result.Categories[i], fields[0])
    }
    for j := 0; j < len(samples); j++ {
      v, err := strconv.ParseInt(fields[j+1], 10, 64)
      if err != nil {
        return fmt.Errorf("invalid mutation matrix table: parsing count for category `%s' failed: %v", fields[0], err)
      }
      if v < 0 {
        return fmt.Errorf("invalid mutation matrix table: negative count for category `%s'", fields[0])
      }
      result.Counts[i][j] = int(v)
    }
    i++
  }
  if i != len(result.Categories) {
    return fmt.Errorf("invalid mutation matrix table: found %d rows, expected %d", i, len(result.Categories))
  }
  *matrix = result

  return nil
}

func (matrix *MutationMatrix) ImportTable(filename string) error {
  var reader io.Reader
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    reader = g
  } else {
    reader = f
  }
  return matrix.ReadTable(reader)
}
