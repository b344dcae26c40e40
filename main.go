package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/adnsv/go-utils/fs"
	cli "github.com/jawher/mow.cli"
	"github.com/repo-archive-X-rays5/vcxproj-to-cmake/cmake"
	"github.com/repo-archive-X-rays5/vcxproj-to-cmake/model"
)

func main() {
	input := ""
	configFN := ""
	outFN := ""

	app := cli.App("vcxproj2cmake", "Visual Studio project -> CMakeLists.txt converter")
	app.Version("version", app_version())
	app.Spec = "[-c=<CONFIG-FILE>] [-o=<OUTPUT-FILE>] [INPUT]"
	app.StringOptPtr(&configFN, "c config", "", "yaml file with output and cmake settings")
	app.StringOptPtr(&outFN, "o output", "", "output filename (default CMakeLists.txt)")
	app.StringArgPtr(&input, "INPUT", "", "the .vcxproj file to convert")

	app.Action = func() {
		cfg := cmake.DefaultConfig()
		if configFN != "" {
			if !fs.FileExists(configFN) {
				log.Fatalf("missing %s", configFN)
			}
			var err error
			cfg, err = cmake.OpenConfig(configFN)
			if err != nil {
				log.Fatal(err)
			}
			log.Printf("using config from %s\n", cfg.Path())
		}

		// allow overriding the config with cli args
		if outFN != "" {
			cfg.Output = outFN
		}

		if input == "" {
			var err error
			input, err = promptInput(os.Stdin, os.Stdout)
			if err != nil {
				log.Fatal(err)
			}
		}

		if err := convert(input, cfg); err != nil {
			log.Print(err)
			cli.Exit(1)
		}
	}

	app.Run(os.Args)
}

// promptInput asks for the input filename on w and reads one line from r.
func promptInput(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "file to convert: ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// convert writes the CMake script for the project at input. Only a
// failure to write the output is reported.
func convert(input string, cfg *cmake.Config) error {
	prj := model.Load(input)

	out := strings.Builder{}
	w := cmake.NewWriter(&out)
	cfg.Apply(w)
	w.WriteProject(prj)

	log.Printf("writing %s\n", cfg.Output)
	if err := fs.WriteFileIfChanged(cfg.Output, []byte(out.String())); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}
	return nil
}
