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

import "path/filepath"
import "strings"

/* -------------------------------------------------------------------------- */

// A named collection of single nucleotide variants from one biological
// specimen. The variants object is expected to carry ref and alt meta
// columns with single nucleotide alleles.
type Sample struct {
  Name     string
  Variants GRanges
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewSample(name string, variants GRanges) Sample {
  return Sample{name, variants}
}

// Import a sample from a VCF file. The sample is named after the file,
// stripping the directory part and any .vcf or .vcf.gz suffix.
func ImportSample(filename string) (Sample, error) {
  variants := GRanges{}
  if err := variants.ImportVCF(filename); err != nil {
    return Sample{}, err
  }
  name := filepath.Base(filename)
  name  = strings.TrimSuffix(name, ".gz")
  name  = strings.TrimSuffix(name, ".vcf")

  return NewSample(name, variants), nil
}
