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

import "testing"

/* -------------------------------------------------------------------------- */

func TestNucleotideAlphabet1(t *testing.T) {

  var alphabet ComplementableAlphabet = NucleotideAlphabet{}

  if alphabet.Length() != 4 {
    t.Error("TestNucleotideAlphabet1 failed!")
  }
  // code/decode roundtrip, case insensitive
  for _, b := range []byte("ACGTacgt") {
    c, err := alphabet.Code(b)
    if err != nil {
      t.Error(err)
    }
    d, err := alphabet.Decode(c)
    if err != nil {
      t.Error(err)
    }
    if d != b && d != b-'a'+'A' {
      t.Error("TestNucleotideAlphabet1 failed!")
    }
  }
  // complement pairs
  bases       := []byte("ACGT")
  complements := []byte("TGCA")
  for i := 0; i < len(bases); i++ {
    c, err := alphabet.Complement(bases[i])
    if err != nil {
      t.Error(err)
    }
    if c != complements[i] {
      t.Error("TestNucleotideAlphabet1 failed!")
    }
  }
  // every base is either a purine or a pyrimidine, never both
  for _, b := range bases {
    purine    , err1 := alphabet.IsPurine    (b)
    pyrimidine, err2 := alphabet.IsPyrimidine(b)
    if err1 != nil || err2 != nil {
      t.Error("TestNucleotideAlphabet1 failed!")
    }
    if purine == pyrimidine {
      t.Error("TestNucleotideAlphabet1 failed!")
    }
  }
  if purine, _ := alphabet.IsPurine('G'); !purine {
    t.Error("TestNucleotideAlphabet1 failed!")
  }
  if pyrimidine, _ := alphabet.IsPyrimidine('T'); !pyrimidine {
    t.Error("TestNucleotideAlphabet1 failed!")
  }
}

func TestNucleotideAlphabet2(t *testing.T) {

  alphabet := NucleotideAlphabet{}

  if _, err := alphabet.Code('N'); err == nil {
    t.Error("TestNucleotideAlphabet2 failed!")
  }
  if _, err := alphabet.Decode(4); err == nil {
    t.Error("TestNucleotideAlphabet2 failed!")
  }
  if _, err := alphabet.Complement('N'); err == nil {
    t.Error("TestNucleotideAlphabet2 failed!")
  }
  if _, err := alphabet.IsPurine('N'); err == nil {
    t.Error("TestNucleotideAlphabet2 failed!")
  }
  if _, err := alphabet.IsPyrimidine('N'); err == nil {
    t.Error("TestNucleotideAlphabet2 failed!")
  }
}
