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

import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestReadVCF1(t *testing.T) {

  granges := GRanges{}

  if err := granges.ImportVCF("granges_vcf_test.vcf"); err != nil {
    t.Error(err)
  }
  // the indel and the symbolic allele are discarded, the multi-allelic
  // record is split into two variants
  if granges.Length() != 4 {
    t.Error("TestReadVCF1 failed!")
  }
  seqnames := []string{"chr1", "chr1", "chr1", "chr2"}
  from     := []int   {4, 11, 11, 6}
  ref      := []string{"C", "A", "A", "G"}
  alt      := []string{"T", "G", "T", "A"}
  for i := 0; i < granges.Length(); i++ {
    if granges.Seqnames[i] != seqnames[i] {
      t.Error("TestReadVCF1 failed!")
    }
    if granges.Ranges[i].From != from[i] {
      t.Error("TestReadVCF1 failed!")
    }
    if granges.Ranges[i].To != from[i]+1 {
      t.Error("TestReadVCF1 failed!")
    }
    if granges.GetMetaStr("ref")[i] != ref[i] {
      t.Error("TestReadVCF1 failed!")
    }
    if granges.GetMetaStr("alt")[i] != alt[i] {
      t.Error("TestReadVCF1 failed!")
    }
  }
}

func TestReadVCF2(t *testing.T) {

  granges := GRanges{}

  // invalid position
  reader := strings.NewReader(
    "#CHROM\tPOS\tID\tREF\tALT\n" +
    "chr1\t0\t.\tC\tT\n")
  if err := granges.ReadVCF(reader); err == nil {
    t.Error("TestReadVCF2 failed!")
  }
  // missing columns
  reader  = strings.NewReader(
    "chr1\t10\t.\tC\n")
  if err := granges.ReadVCF(reader); err == nil {
    t.Error("TestReadVCF2 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestImportSample1(t *testing.T) {

  sample, err := ImportSample("granges_vcf_test.vcf")
  if err != nil {
    t.Error(err)
  }
  // the sample name is the basename without the file extension
  if sample.Name != "granges_vcf_test" {
    t.Error("TestImportSample1 failed!")
  }
  if sample.Variants.Length() != 4 {
    t.Error("TestImportSample1 failed!")
  }
}
