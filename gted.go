//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/timburks/gted/pkg/commander"
	"github.com/timburks/gted/pkg/config"
	"github.com/timburks/gted/pkg/editor"
	"github.com/timburks/gted/pkg/screen"
	"github.com/timburks/gted/pkg/types"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gted: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	filenames := make([]string, 0)
	var script string
	configPath := config.DefaultPath()

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--eval": // run a lisp script without a screen
			i++
			if i >= len(args) {
				return errors.New("no file specified for --eval option")
			}
			script = args[i]
		case "--config":
			i++
			if i >= len(args) {
				return errors.New("no file specified for --config option")
			}
			configPath = args[i]
		default:
			filenames = append(filenames, args[i])
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.Log, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	defer f.Close()
	log.Printf("config: %s slack=%d color=%t", configPath, cfg.Slack, cfg.Color)

	// The session holds the open documents; the commander edits them.
	s := editor.NewSession(types.Size{Rows: 24, Cols: 80}, cfg.Slack, editor.NewClipboard(cfg.SystemClipboard))
	for _, filename := range filenames {
		if _, err := s.OpenOrCreate(filename); err != nil {
			log.Printf("open: %v", err)
			fmt.Fprintf(os.Stderr, "gted: %v\n", err)
		}
	}
	if len(filenames) == 0 && !term.IsTerminal(int(os.Stdin.Fd())) {
		if _, err := s.ReadFrom(os.Stdin, "<stdin>"); err != nil {
			return err
		}
	}
	if s.Current() == nil {
		s.NewDocument()
	}

	if script != "" {
		c := commander.NewCommander(s, nil, nil)
		if _, err := c.EvalFile(script); err != nil {
			return err
		}
		if msg := c.Message(); msg != "" {
			fmt.Println(msg)
		}
		return nil
	}

	theme := screen.MonoTheme
	if cfg.Color {
		theme = screen.ColorTheme
	}
	scr, err := screen.New(theme, s.MarkResize)
	if err != nil {
		return err
	}
	defer scr.Close()

	log.Printf("start: %d documents", s.Registry.Len())
	commander.NewCommander(s, scr, scr).Run()
	return nil
}
