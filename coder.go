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
	"fmt"
	"log"
	"os"

	"github.com/timburks/coder/commander"
	"github.com/timburks/coder/config"
	"github.com/timburks/coder/editor"
	"github.com/timburks/coder/screen"
)

func main() {

	filenames := make([]string, 0)
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				os.Exit(1)
			}
		default:
			filenames = append(filenames, argi)
		}
	}

	c := config.Default()

	// The editor manages all tabs and their text.
	e := editor.NewEditor(c)

	// The commander converts user inputs into commands for the editor.
	cmd := commander.NewCommander(e)

	// The first file loads into the initial tab, the rest get tabs of their own.
	for _, filename := range filenames {
		if fileinfo, err := os.Stat(filename); err == nil && fileinfo.IsDir() {
			log.Printf("%s is a directory", filename)
			continue
		}
		if err := e.Open(filename); err != nil {
			log.Output(1, err.Error())
		}
	}

	if script != "" {
		// Run a coder script and exit.
		result, err := cmd.ParseEvalFile(script)
		if err != nil {
			log.Output(1, err.Error())
			os.Exit(1)
		}
		fmt.Println(result)
		return
	}

	// Open a log file.
	f, err := os.OpenFile(c.LogPath(), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		return
	}
	defer s.Close()

	// Run the main event loop.
	for cmd.IsRunning() {
		s.Render(e, cmd)
		err = cmd.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}
