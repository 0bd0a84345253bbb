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
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

func isSingleNucleotide(s string) bool {
  if len(s) != 1 {
    return false
  }
  switch s[0] {
  case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
    return true
  }
  return false
}

/* -------------------------------------------------------------------------- */

// Import single nucleotide variants from a VCF file. Only the first five
// columns (CHROM, POS, ID, REF, ALT) are parsed, all remaining columns are
// ignored. Records where either the reference or the alternate allele is
// not a single nucleotide are discarded. Multi-allelic records are split
// into one variant per alternate allele. The one-based positions of the
// VCF format are converted to zero-based ranges. Reference and alternate
// alleles are accessible as meta columns named ref and alt.
func (g *GRanges) ReadVCF(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)

  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  ref      := []string{}
  alt      := []string{}

  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if len(line) == 0 {
      continue
    }
    if strings.HasPrefix(line, "##") {
      // meta-information line
      continue
    }
    if strings.HasPrefix(line, "#") {
      // header line
      continue
    }
    fields := strings.Fields(line)
    if len(fields) < 5 {
      return fmt.Errorf("ReadVCF(): file must have at least five columns (line %d)", i)
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64); if err != nil {
      return fmt.Errorf("ReadVCF(): parsing position failed at line %d: %v", i, err)
    }
    if t1 < 1 {
      return fmt.Errorf("ReadVCF(): invalid position `%d' at line %d", t1, i)
    }
    if !isSingleNucleotide(fields[3]) {
      // not a single nucleotide variant
      continue
    }
    // split multi-allelic records
    for _, allele := range strings.Split(fields[4], ",") {
      if !isSingleNucleotide(allele) {
        continue
      }
      seqnames = append(seqnames, fields[0])
      from     = append(from,     int(t1)-1)
      to       = append(to,       int(t1))
      ref      = append(ref,      strings.ToUpper(fields[3]))
      alt      = append(alt,      strings.ToUpper(allele))
    }
  }
  *g = NewGRanges(seqnames, from, to, nil)
  g.AddMeta("ref", ref)
  g.AddMeta("alt", alt)

  return nil
}

func (g *GRanges) ImportVCF(filename string) error {
  var reader io.Reader
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  // check if file is gzipped
  if isGzip(filename) {
    r, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer r.Close()
    reader = r
  } else {
    reader = f
  }
  return g.ReadVCF(reader)
}
