/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cloudwego/tacopt"
	"github.com/cloudwego/tacopt/internal/opts"
	"github.com/mattn/go-isatty"
)

var (
	ConfigFile string
	Passes     string
	Strict     bool
	Debug      bool
	Dot        bool
)

func init() {
	flag.StringVar(&ConfigFile, "config", "", "YAML options file")
	flag.StringVar(&Passes, "passes", "", "comma-separated list of passes to run")
	flag.BoolVar(&Strict, "strict", false, "reject functions that may fall off the end")
	flag.BoolVar(&Debug, "debug", false, "dump dataflow facts to stderr")
	flag.BoolVar(&Dot, "dot", false, "print Graphviz DOT instead of TAC")
}

func checkArgs() {
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
}

func readSource() (string, error) {
	var err error
	var buf []byte

	/* read from stdin when no file was given */
	if flag.NArg() == 0 {
		buf, err = io.ReadAll(os.Stdin)
	} else {
		buf, err = os.ReadFile(flag.Arg(0))
	}

	/* check for errors */
	if err != nil {
		return "", err
	} else {
		return string(buf), nil
	}
}

// loadOptions merges the options file with the flags that were set on the
// command line, the latter take precedence.
func loadOptions() (opts.Options, error) {
	var err error
	var ret opts.Options

	/* options file, if any */
	if ConfigFile == "" {
		ret = opts.GetDefaultOptions()
	} else if ret, err = opts.LoadFile(ConfigFile); err != nil {
		return opts.Options{}, fmt.Errorf("load %s failed: %w", ConfigFile, err)
	}

	/* explicit flags */
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "passes":
			ret.Passes = splitPasses(Passes)
		case "strict":
			ret.Strict = Strict
		case "debug":
			ret.Debug = Debug
		}
	})
	return ret, nil
}

func splitPasses(s string) []string {
	var ret []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			ret = append(ret, v)
		}
	}
	return ret
}

// highlight makes function headers bold.
func highlight(s string) string {
	buf := strings.Split(s, "\n")
	for i, v := range buf {
		if strings.HasPrefix(v, "func ") {
			buf[i] = "\x1b[1m" + v + "\x1b[0m"
		}
	}
	return strings.Join(buf, "\n")
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	flag.Parse()
	checkArgs()

	/* load the options and the source */
	o, err := loadOptions()
	if err != nil {
		log.Fatalln(err)
	}
	src, err := readSource()
	if err != nil {
		log.Fatalln(fmt.Errorf("read source failed: %w", err))
	}

	/* optimize everything */
	p, err := tacopt.Compile(src, tacopt.WithOptions(o))
	if err != nil {
		log.Fatalln(err)
	}

	/* print the result */
	if Dot {
		fmt.Println(p.Dot())
	} else if out := p.String(); isTerminal(os.Stdout) {
		fmt.Println(highlight(out))
	} else {
		fmt.Println(out)
	}
}
