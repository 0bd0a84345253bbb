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

import "fmt"

/* -------------------------------------------------------------------------- */

type ComplementableAlphabet interface {
  Code             (i byte) (byte, error)
  Decode           (i byte) (byte, error)
  Complement       (i byte) (byte, error)
  IsPurine         (i byte) (bool, error)
  IsPyrimidine     (i byte) (bool, error)
  Length           ()       int
  String           ()       string
}

/* -------------------------------------------------------------------------- */

type NucleotideAlphabet struct {
}

func (NucleotideAlphabet) Code(i byte) (byte, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return 0, nil
  case 'C': fallthrough
  case 'c': return 1, nil
  case 'G': fallthrough
  case 'g': return 2, nil
  case 'T': fallthrough
  case 't': return 3, nil
  default:  return 0xFF, fmt.Errorf("Code(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) Decode(i byte) (byte, error) {
  switch i {
  case 0:  return 'A', nil
  case 1:  return 'C', nil
  case 2:  return 'G', nil
  case 3:  return 'T', nil
  default: return 0xFF, fmt.Errorf("Decode(): `%d' is not a code of the alphabet", int(i))
  }
}

func (NucleotideAlphabet) Complement(i byte) (byte, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return 'T', nil
  case 'C': fallthrough
  case 'c': return 'G', nil
  case 'G': fallthrough
  case 'g': return 'C', nil
  case 'T': fallthrough
  case 't': return 'A', nil
  default:  return 0xFF, fmt.Errorf("Complement(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) IsPurine(i byte) (bool, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return true, nil
  case 'G': fallthrough
  case 'g': return true, nil
  case 'C': fallthrough
  case 'c': return false, nil
  case 'T': fallthrough
  case 't': return false, nil
  default:  return false, fmt.Errorf("IsPurine(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) IsPyrimidine(i byte) (bool, error) {
  switch i {
  case 'C': fallthrough
  case 'c': return true, nil
  case 'T': fallthrough
  case 't': return true, nil
  case 'A': fallthrough
  case 'a': return false, nil
  case 'G': fallthrough
  case 'g': return false, nil
  default:  return false, fmt.Errorf("IsPyrimidine(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) Length() int {
  return 4
}

func (NucleotideAlphabet) String() string {
  return "nucleotide alphabet"
}
