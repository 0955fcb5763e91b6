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
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/creack/pty"
)

// OutputTabName names the read-only tab that shows script output.
const OutputTabName = "*output*"

// Run runs the file of the active tab with the interpreter configured for
// its extension and shows what it printed in the output tab. The file is
// run as it is on disk.
func (e *Editor) Run(ctx context.Context) error {
	t := e.ActiveTab()
	if t.fileName == "" {
		return ErrNoFileName
	}
	interpreter, ok := e.config.Runner(t.fileName)
	if !ok {
		return fmt.Errorf("%w for %s", ErrNoRunner, t.GetName())
	}
	if _, err := os.Stat(t.fileName); err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.RunTimeout())
	defer cancel()
	cmd := exec.CommandContext(ctx, interpreter, t.fileName)
	cmd.Dir = filepath.Dir(t.fileName)
	f, err := pty.Start(cmd)
	if err != nil {
		log.Printf("failed to run %s: %v", t.fileName, err)
		return fmt.Errorf("running %s: %w", t.GetName(), err)
	}
	out, err := io.ReadAll(f)
	f.Close()
	// the pty reports EIO once the child has exited
	if err != nil && !errors.Is(err, syscall.EIO) {
		log.Printf("reading output of %s: %v", t.fileName, err)
	}
	text := strings.ReplaceAll(string(out), "\r\n", "\n")
	if err := cmd.Wait(); err != nil {
		text += fmt.Sprintf("\n[%s: %v]\n", interpreter, err)
	}
	e.showOutput(text)
	return nil
}

func (e *Editor) showOutput(text string) {
	for i, t := range e.tabs {
		if t.name == OutputTabName && t.readOnly {
			t.Load([]byte(text), "", false)
			e.active = i
			return
		}
	}
	t := e.newTab()
	t.SetNameAndReadOnly(OutputTabName, true)
	t.Load([]byte(text), "", false)
}
