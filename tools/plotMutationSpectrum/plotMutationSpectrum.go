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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "image/color"
import   "log"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"

import   "gonum.org/v1/plot/vg"

import . "github.com/pbenner/mutspectrum"

/* -------------------------------------------------------------------------- */

type Config struct {
  GroupBy        string
  Colors         string
  NoLegend       bool
  DistinguishCpG bool
  Verbose        int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func parseColor(str string) (color.Color, error) {
  str = strings.TrimPrefix(str, "#")
  if len(str) != 6 {
    return nil, fmt.Errorf("invalid color `%s'", str)
  }
  v, err := strconv.ParseUint(str, 16, 32)
  if err != nil {
    return nil, fmt.Errorf("invalid color `%s': %v", str, err)
  }
  return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xFF}, nil
}

func parseColors(config Config) []color.Color {
  if config.Colors == "" {
    return nil
  }
  fields := strings.Split(config.Colors, ",")
  colors := make([]color.Color, len(fields))
  for i, field := range fields {
    c, err := parseColor(field)
    if err != nil {
      log.Fatal(err)
    }
    colors[i] = c
  }
  return colors
}

func parseGroupBy(config Config) []string {
  if config.GroupBy == "" {
    return nil
  }
  return strings.Split(config.GroupBy, ",")
}

/* -------------------------------------------------------------------------- */

func importMatrix(config Config, filename string) MutationMatrix {
  matrix := MutationMatrix{}
  PrintStderr(config, 1, "Reading mutation matrix `%s'... ", filename)
  if err := matrix.ImportTable(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return matrix
}

/* -------------------------------------------------------------------------- */

func plotMutationSpectrum(config Config, filenameIn, filenameOut string) {
  matrix := importMatrix(config, filenameIn)

  occurrences := matrix.TypeOccurrences(config.DistinguishCpG)

  spectrumConfig := DefaultSpectrumConfig()
  spectrumConfig.GroupBy        = parseGroupBy(config)
  spectrumConfig.Colors         = parseColors (config)
  spectrumConfig.ShowLegend     = !config.NoLegend
  spectrumConfig.DistinguishCpG = config.DistinguishCpG

  p, err := PlotSpectrum(occurrences, spectrumConfig)
  if err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filenameOut); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote spectrum plot to `%s'\n", filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optGroupBy := options. StringLong("group-by",        0 , "", "comma separated group label for every sample")
  optColors  := options. StringLong("colors",          0 , "", "comma separated list of seven colors, e.g. #2ebaed,...")
  optCpG     := options.   BoolLong("distinguish-cpg", 0 ,     "split C>T substitutions by CpG context")
  optNoLegend:= options.   BoolLong("no-legend",       0 ,     "do not draw a legend")
  optVerbose := options.CounterLong("verbose",        'v',     "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",           'h',     "print help")

  options.SetParameters("<MATRIX.table> <OUTPUT.pdf>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.GroupBy        = *optGroupBy
  config.Colors         = *optColors
  config.NoLegend       = *optNoLegend
  config.DistinguishCpG = *optCpG
  config.Verbose        = *optVerbose

  plotMutationSpectrum(config, options.Args()[0], options.Args()[1])
}
