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

import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestGenome1(t *testing.T) {

  genome := Genome{}
  reader := strings.NewReader(
    "chr1 249250621\n" +
    "chr2 243199373\n")

  if err := genome.Read(reader); err != nil {
    t.Error(err)
  }
  if genome.Length() != 2 {
    t.Error("TestGenome1 failed!")
  }
  if length, err := genome.SeqLength("chr2"); err != nil || length != 243199373 {
    t.Error("TestGenome1 failed!")
  }
  if _, err := genome.SeqLength("chrX"); err == nil {
    t.Error("TestGenome1 failed!")
  }
}
