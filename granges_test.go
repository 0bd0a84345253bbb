/* Copyright (C) 2016-2021 Philipp Benner
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
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func testGRanges() GRanges {
  granges := NewGRanges(
    []string{"chr1", "chr1", "chr2"},
    []int{100, 200, 300},
    []int{101, 201, 301},
    nil)
  granges.AddMeta("ref",   []string {"C", "T", "G"})
  granges.AddMeta("score", []float64{0.1, 0.5, 0.9})
  granges.AddMeta("count", []int    {1, 2, 3})
  return granges
}

/* -------------------------------------------------------------------------- */

func TestGRanges1(t *testing.T) {

  granges := testGRanges()

  // a clone must not share data with the original
  clone := granges.Clone()
  clone.Seqnames[0] = "chr9"
  clone.GetMetaStr("ref")[0] = "A"
  clone.DeleteMeta("score")

  if granges.Seqnames[0] != "chr1" {
    t.Error("TestGRanges1 failed!")
  }
  if granges.GetMetaStr("ref")[0] != "C" {
    t.Error("TestGRanges1 failed!")
  }
  if len(granges.GetMetaFloat("score")) != 3 {
    t.Error("TestGRanges1 failed!")
  }
  if len(clone.GetMetaFloat("score")) != 0 {
    t.Error("TestGRanges1 failed!")
  }
}

func TestGRanges2(t *testing.T) {

  granges := testGRanges()

  subset := granges.Subset([]int{2, 0})
  if subset.Length() != 2 {
    t.Error("TestGRanges2 failed!")
  }
  if subset.Seqnames[0] != "chr2" || subset.Seqnames[1] != "chr1" {
    t.Error("TestGRanges2 failed!")
  }
  if subset.Ranges[0].From != 300 || subset.Ranges[1].From != 100 {
    t.Error("TestGRanges2 failed!")
  }
  if subset.GetMetaStr("ref")[0] != "G" {
    t.Error("TestGRanges2 failed!")
  }
  if subset.GetMetaFloat("score")[0] != 0.9 {
    t.Error("TestGRanges2 failed!")
  }
  if subset.GetMetaInt("count")[1] != 1 {
    t.Error("TestGRanges2 failed!")
  }
}

func TestGRanges3(t *testing.T) {

  granges := NewEmptyGRanges(2)
  if granges.Length() != 2 {
    t.Error("TestGRanges3 failed!")
  }
  if granges.Strand[0] != '*' || granges.Strand[1] != '*' {
    t.Error("TestGRanges3 failed!")
  }
}

func TestGRanges4(t *testing.T) {

  granges := testGRanges()
  buffer  := new(bytes.Buffer)

  if err := granges.WriteTable(buffer, true, true); err != nil {
    t.Error(err)
  }
  lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
  if len(lines) != 4 {
    t.Error("TestGRanges4 failed!")
  }
  header := strings.Fields(lines[0])
  if len(header) != 7 || header[0] != "seqnames" || header[4] != "ref" {
    t.Error("TestGRanges4 failed!")
  }
  fields := strings.Fields(lines[1])
  if fields[0] != "chr1" || fields[1] != "100" || fields[2] != "101" {
    t.Error("TestGRanges4 failed!")
  }
  if fields[3] != "*" || fields[4] != "C" || fields[6] != "1" {
    t.Error("TestGRanges4 failed!")
  }
}
