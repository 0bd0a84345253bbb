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
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/mutspectrum"

/* -------------------------------------------------------------------------- */

type Config struct {
  Header   bool
  Compress bool
  Threads  int
  Verbose  int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importFasta(config Config, filename string) StringSet {
  s := EmptyStringSet()
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  if err := s.ImportFasta(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return s
}

func importSamples(config Config, filenames []string) []Sample {
  samples := make([]Sample, len(filenames))
  for i, filename := range filenames {
    PrintStderr(config, 1, "Reading vcf file `%s'... ", filename)
    sample, err := ImportSample(filename)
    if err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
    samples[i] = sample
  }
  return samples
}

func writeResult(config Config, matrix MutationMatrix, filenameOut string) {
  if filenameOut == "" {
    if err := matrix.WriteTable(os.Stdout, config.Header); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing matrix to `%s'... ", filenameOut)
    if err := matrix.ExportTable(filenameOut, config.Header, config.Compress); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func mutationMatrix(config Config, filenameFasta string, filenamesVcf []string, filenameOut string) {
  sequences := importFasta  (config, filenameFasta)
  samples   := importSamples(config, filenamesVcf)

  PrintStderr(config, 1, "Classifying variants of %d samples... ", len(samples))
  matrix, err := BuildMutationMatrix(samples, sequences, nil, config.Threads)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  writeResult(config, matrix, filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optOutput  := options. StringLong("output",     0 , "", "write matrix to file [default: stdout]")
  optCompress:= options.   BoolLong("compress",   0 ,     "gzip compress output file")
  optNoHeader:= options.   BoolLong("no-header",  0 ,     "do not print sample names")
  optThreads := options.    IntLong("threads",    0 ,  0, "number of threads [default: all available]")
  optVerbose := options.CounterLong("verbose",   'v',     "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",      'h',     "print help")

  options.SetParameters("<GENOME.fa> <SAMPLE.vcf...>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Header   = !*optNoHeader
  config.Compress = *optCompress
  config.Threads  = *optThreads
  config.Verbose  = *optVerbose

  filenameFasta := options.Args()[0]
  filenamesVcf  := options.Args()[1:]

  mutationMatrix(config, filenameFasta, filenamesVcf, *optOutput)
}
