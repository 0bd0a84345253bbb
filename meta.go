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
import "io"

/* -------------------------------------------------------------------------- */

// Named meta data columns attached to a GRanges object. Each column is
// either a []string, []int, or []float64 slice with one entry per row.
type Meta struct {
  MetaName []string
  MetaData []interface{}
  rows int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewMeta(names []string, data []interface{}) Meta {
  meta := Meta{}
  if len(names) != len(data) {
    panic("NewMeta(): invalid parameters")
  }
  for i := 0; i < len(names); i++ {
    meta.AddMeta(names[i], data[i])
  }
  return meta
}

// Deep copy the Meta object.
func (m *Meta) Clone() Meta {
  result := Meta{}
  for i := 0; i < m.MetaLength(); i++ {
    switch v := m.MetaData[i].(type) {
    case []string:
      r := make([]string, len(v))
      copy(r, v)
      result.AddMeta(m.MetaName[i], r)
    case []float64:
      r := make([]float64, len(v))
      copy(r, v)
      result.AddMeta(m.MetaName[i], r)
    case []int:
      r := make([]int, len(v))
      copy(r, v)
      result.AddMeta(m.MetaName[i], r)
    default: panic("Clone(): invalid type")
    }
  }
  return result
}

/* -------------------------------------------------------------------------- */

// Returns the number of rows.
func (m *Meta) Length() int {
  return m.rows
}

// Returns the number of columns.
func (m *Meta) MetaLength() int {
  return len(m.MetaName)
}

func (m *Meta) AddMeta(name string, meta interface{}) {
  if m.MetaLength() > 0 {
    // this is not the first column added; check length
    switch v := meta.(type) {
    case []string:  if len(v) != m.rows { goto lengthErr }
    case []float64: if len(v) != m.rows { goto lengthErr }
    case []int:     if len(v) != m.rows { goto lengthErr }
    default: panic("AddMeta(): invalid type")
    }
  } else {
    // this is the first column, determine length
    switch v := meta.(type) {
    case []string:  m.rows = len(v)
    case []float64: m.rows = len(v)
    case []int:     m.rows = len(v)
    default: panic("AddMeta(): invalid type")
    }
  }
  m.MetaData = append(m.MetaData, meta)
  m.MetaName = append(m.MetaName, name)
  return
lengthErr:
  panic("AddMeta(): column has invalid length")
}

func (m *Meta) DeleteMeta(name string) {
  for i := 0; i < m.MetaLength(); i++ {
    if m.MetaName[i] == name {
      m.MetaName = append(m.MetaName[:i], m.MetaName[i+1:]...)
      m.MetaData = append(m.MetaData[:i], m.MetaData[i+1:]...)
    }
  }
}

func (m *Meta) GetMeta(name string) interface{} {
  for i := 0; i < m.MetaLength(); i++ {
    if m.MetaName[i] == name {
      return m.MetaData[i]
    }
  }
  return nil
}

func (m *Meta) GetMetaStr(name string) []string {
  r := m.GetMeta(name)
  if r != nil {
    return r.([]string)
  }
  return []string{}
}

func (m *Meta) GetMetaFloat(name string) []float64 {
  r := m.GetMeta(name)
  if r != nil {
    return r.([]float64)
  }
  return []float64{}
}

func (m *Meta) GetMetaInt(name string) []int {
  r := m.GetMeta(name)
  if r != nil {
    return r.([]int)
  }
  return []int{}
}

/* -------------------------------------------------------------------------- */

// Return a new Meta object with a subset of the rows from
// this object.
func (meta *Meta) Subset(indices []int) Meta {
  n := len(indices)
  m := meta.MetaLength()
  data := []interface{}{}

  for j := 0; j < m; j++ {
    switch v := meta.MetaData[j].(type) {
    case []string:
      l := make([]string, n)
      for i := 0; i < n; i++ {
        l[i] = v[indices[i]]
      }
      data = append(data, l)
    case []float64:
      l := make([]float64, n)
      for i := 0; i < n; i++ {
        l[i] = v[indices[i]]
      }
      data = append(data, l)
    case []int:
      l := make([]int, n)
      for i := 0; i < n; i++ {
        l[i] = v[indices[i]]
      }
      data = append(data, l)
    }
  }
  return NewMeta(meta.MetaName, data)
}

/* i/o
 * -------------------------------------------------------------------------- */

func (meta *Meta) WriteTableRow(w io.Writer, i int) {
  if i == -1 {
    // write header
    for k := 0; k < meta.MetaLength(); k++ {
      fmt.Fprintf(w, " %10s", meta.MetaName[k])
    }
  } else {
    for k := 0; k < meta.MetaLength(); k++ {
      switch v := meta.MetaData[k].(type) {
      case []string : fmt.Fprintf(w, " %10s", v[i])
      case []float64: fmt.Fprintf(w, " %10f", v[i])
      case []int    : fmt.Fprintf(w, " %10d", v[i])
      }
    }
  }
}
