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
import "image/color"
import "log"
import "math"

import "gonum.org/v1/gonum/stat"
import "gonum.org/v1/plot"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"

/* mutation type occurrences
 * -------------------------------------------------------------------------- */

// The six base substitution types in canonical order.
var MutationTypes = []string{"C>A", "C>G", "C>T", "T>A", "T>C", "T>G"}

// Base substitution types with C>T subdivided by CpG context. The C>T
// column contains the total count, i.e. the sum of the two subdivisions.
var MutationTypesCpG = []string{"C>A", "C>G", "C>T", "T>A", "T>C", "T>G", "C>T at CpG", "C>T other"}

// Occurrence counts of the base substitution types, one row per sample.
type TypeOccurrences struct {
  Types   []string
  Samples []string
  Counts  [][]int
}

// Reduce the 96 context categories to the six base substitution types. If
// distinguishCpG is true, C>T counts are additionally subdivided into
// substitutions at CpG sites (3' flanking base G) and all others, giving
// eight columns in total.
func (matrix MutationMatrix) TypeOccurrences(distinguishCpG bool) TypeOccurrences {
  types := MutationTypes
  if distinguishCpG {
    types = MutationTypesCpG
  }
  names := make([]string, len(matrix.Samples))
  copy(names, matrix.Samples)

  counts := make([][]int, len(matrix.Samples))
  for j := 0; j < len(matrix.Samples); j++ {
    counts[j] = make([]int, len(types))
  }
  for i, category := range matrix.Categories {
    // category labels have the form b1[X>Y]b3
    substitution := category[2:5]
    k := -1
    for l, t := range MutationTypes {
      if t == substitution {
        k = l; break
      }
    }
    if k == -1 {
      panic(fmt.Sprintf("TypeOccurrences(): invalid category `%s'", category))
    }
    for j := 0; j < len(matrix.Samples); j++ {
      counts[j][k] += matrix.Counts[i][j]
    }
    if distinguishCpG && substitution == "C>T" {
      k = 7
      if category[6] == 'G' {
        k = 6
      }
      for j := 0; j < len(matrix.Samples); j++ {
        counts[j][k] += matrix.Counts[i][j]
      }
    }
  }
  return TypeOccurrences{types, names, counts}
}

/* spectrum plot
 * -------------------------------------------------------------------------- */

// Default palette for spectrum plots. The entries color the mutation types
// C>A, C>G, C>T (at CpG), C>T other, T>A, T>C, and T>G, in this order.
var DefaultSpectrumColors = []color.Color{
  color.RGBA{0x2e, 0xba, 0xed, 0xff},
  color.RGBA{0x00, 0x00, 0x00, 0xff},
  color.RGBA{0xde, 0x1c, 0x14, 0xff},
  color.RGBA{0xe9, 0x8c, 0x7b, 0xff},
  color.RGBA{0xd4, 0xd2, 0xd2, 0xff},
  color.RGBA{0xad, 0xcc, 0x54, 0xff},
  color.RGBA{0xf0, 0xd0, 0xce, 0xff},
}

type SpectrumConfig struct {
  // optional group label for every sample; if empty, all samples form a
  // single group
  GroupBy        []string
  // optional palette, must contain exactly seven colors
  Colors         []color.Color
  ShowLegend     bool
  DistinguishCpG bool
}

func DefaultSpectrumConfig() SpectrumConfig {
  return SpectrumConfig{ShowLegend: true}
}

/* -------------------------------------------------------------------------- */

// Vertical error bars drawn at the bar positions of a grouped bar chart.
// The i-th value is drawn at nominal x-coordinate i, shifted by the same
// offset as the corresponding bars.
type spectrumErrorBars struct {
  values    []float64
  errors    []float64
  offset    vg.Length
  capWidth  vg.Length
  lineStyle draw.LineStyle
}

func (bars spectrumErrorBars) Plot(c draw.Canvas, plt *plot.Plot) {
  trX, trY := plt.Transforms(&c)

  for i := 0; i < len(bars.values); i++ {
    if bars.errors[i] == 0.0 || math.IsNaN(bars.errors[i]) {
      continue
    }
    x  := trX(float64(i)) + bars.offset
    y0 := trY(bars.values[i] - bars.errors[i])
    y1 := trY(bars.values[i] + bars.errors[i])
    c.StrokeLine2(bars.lineStyle, x, y0, x, y1)
    c.StrokeLine2(bars.lineStyle, x-bars.capWidth/2, y0, x+bars.capWidth/2, y0)
    c.StrokeLine2(bars.lineStyle, x-bars.capWidth/2, y1, x+bars.capWidth/2, y1)
  }
}

func (bars spectrumErrorBars) DataRange() (xmin, xmax, ymin, ymax float64) {
  xmin = 0.0
  xmax = float64(len(bars.values)-1)
  ymin = math.Inf( 1)
  ymax = math.Inf(-1)
  for i := 0; i < len(bars.values); i++ {
    if bars.errors[i] == 0.0 || math.IsNaN(bars.errors[i]) {
      continue
    }
    ymin = math.Min(ymin, bars.values[i] - bars.errors[i])
    ymax = math.Max(ymax, bars.values[i] + bars.errors[i])
  }
  if math.IsInf(ymin, 1) {
    ymin, ymax = 0.0, 0.0
  }
  return xmin, xmax, ymin, ymax
}

/* -------------------------------------------------------------------------- */

// Plot the mutation type composition of groups of samples as a grouped bar
// chart. Each sample's counts are first normalized to relative
// proportions; bars show the group mean per mutation type, error bars one
// standard deviation. Groups with a single sample are drawn without error
// bars, since the standard deviation of one observation is undefined; a
// warning is printed in this case.
//
// The occurrence table must have eight type columns if
// config.DistinguishCpG is true (see TypeOccurrences) and six otherwise.
func PlotSpectrum(occurrences TypeOccurrences, config SpectrumConfig) (*plot.Plot, error) {
  // plotted mutation types, with their source column in the occurrence
  // table and their color in the palette
  var plotTypes []string
  var typeCol   []int
  var colorIdx  []int

  if config.DistinguishCpG {
    if len(occurrences.Types) != len(MutationTypesCpG) {
      return nil, fmt.Errorf("occurrence table has %d type columns, expected %d", len(occurrences.Types), len(MutationTypesCpG))
    }
    plotTypes = []string{"C>A", "C>G", "C>T at CpG", "C>T other", "T>A", "T>C", "T>G"}
    typeCol   = []int{0, 1, 6, 7, 3, 4, 5}
    colorIdx  = []int{0, 1, 2, 3, 4, 5, 6}
  } else {
    if len(occurrences.Types) != len(MutationTypes) {
      return nil, fmt.Errorf("occurrence table has %d type columns, expected %d", len(occurrences.Types), len(MutationTypes))
    }
    plotTypes = MutationTypes
    typeCol   = []int{0, 1, 2, 3, 4, 5}
    colorIdx  = []int{0, 1, 2, 4, 5, 6}
  }
  colors := config.Colors
  if colors == nil {
    colors = DefaultSpectrumColors
  }
  if len(colors) != len(DefaultSpectrumColors) {
    return nil, fmt.Errorf("invalid color palette: expected %d colors but got %d", len(DefaultSpectrumColors), len(colors))
  }
  groupBy := config.GroupBy
  if len(groupBy) == 0 {
    groupBy = make([]string, len(occurrences.Samples))
    for i := 0; i < len(groupBy); i++ {
      groupBy[i] = "all"
    }
  }
  if len(groupBy) != len(occurrences.Samples) {
    return nil, fmt.Errorf("invalid grouping: %d labels for %d samples", len(groupBy), len(occurrences.Samples))
  }
  // collect groups in order of first appearance
  groups   := []string{}
  groupIdx := make(map[string]int)
  for _, label := range groupBy {
    if _, ok := groupIdx[label]; !ok {
      groupIdx[label] = len(groups)
      groups = append(groups, label)
    }
  }
  // per-sample relative proportions of the plotted types; samples without
  // any mutations contribute zero proportions
  proportions := make([][]float64, len(occurrences.Samples))
  for j := 0; j < len(occurrences.Samples); j++ {
    total := 0
    for k := 0; k < len(MutationTypes); k++ {
      total += occurrences.Counts[j][k]
    }
    proportions[j] = make([]float64, len(plotTypes))
    if total == 0 {
      continue
    }
    for k := 0; k < len(plotTypes); k++ {
      proportions[j][k] = float64(occurrences.Counts[j][typeCol[k]])/float64(total)
    }
  }
  // per-group mean and standard deviation of every plotted type, and the
  // total number of mutations per group
  means  := make([][]float64, len(plotTypes))
  stddev := make([][]float64, len(plotTypes))
  sizes  := make([]int, len(groups))
  totals := make([]int, len(groups))
  for k := 0; k < len(plotTypes); k++ {
    means [k] = make([]float64, len(groups))
    stddev[k] = make([]float64, len(groups))
  }
  for g := 0; g < len(groups); g++ {
    members := []int{}
    for j, label := range groupBy {
      if groupIdx[label] == g {
        members = append(members, j)
      }
    }
    sizes[g] = len(members)
    for _, j := range members {
      for k := 0; k < len(MutationTypes); k++ {
        totals[g] += occurrences.Counts[j][k]
      }
    }
    for k := 0; k < len(plotTypes); k++ {
      x := make([]float64, len(members))
      for l, j := range members {
        x[l] = proportions[j][k]
      }
      m, s := stat.MeanStdDev(x, nil)
      means [k][g] = m
      stddev[k][g] = s
    }
    if sizes[g] == 1 {
      log.Printf("warning: group `%s' contains only one sample, omitting error bars", groups[g])
    }
  }
  // suppress error bars for groups with a single sample
  for g := 0; g < len(groups); g++ {
    if sizes[g] == 1 {
      for k := 0; k < len(plotTypes); k++ {
        stddev[k][g] = 0.0
      }
    }
  }
  p := plot.New()
  p.Y.Label.Text = "relative contribution"
  p.Y.Min = 0.0

  w := vg.Points(12)

  for k := 0; k < len(plotTypes); k++ {
    bars, err := plotter.NewBarChart(plotter.Values(means[k]), w)
    if err != nil {
      return nil, err
    }
    bars.LineStyle.Width = vg.Length(0)
    bars.Color  = colors[colorIdx[k]]
    bars.Offset = vg.Length(float64(k) - float64(len(plotTypes))/2.0 + 0.5)*w
    p.Add(bars)
    if config.ShowLegend {
      p.Legend.Add(plotTypes[k], bars)
    }
    errors := spectrumErrorBars{
      values  : means [k],
      errors  : stddev[k],
      offset  : bars.Offset,
      capWidth: w/2,
      lineStyle: draw.LineStyle{
        Color: color.Black,
        Width: vg.Points(0.75),
      },
    }
    p.Add(errors)
  }
  if config.ShowLegend {
    p.Legend.Top = true
  }
  // annotate every group with its total mutation count
  labels := make([]string, len(groups))
  for g := 0; g < len(groups); g++ {
    labels[g] = fmt.Sprintf("%s (n=%d)", groups[g], totals[g])
  }
  p.NominalX(labels...)

  return p, nil
}
