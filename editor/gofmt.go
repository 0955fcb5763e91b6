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
	"go/format"
	"log"
)

// Gofmt formats Go source. Source with syntax errors is logged and
// returned as an error so that it can be saved unchanged.
func Gofmt(filename string, inputBytes []byte) ([]byte, error) {
	outputBytes, err := format.Source(inputBytes)
	if err != nil {
		log.Printf("Syntax errors in %s:\n%v", filename, err)
		return inputBytes, err
	}
	return outputBytes, nil
}
