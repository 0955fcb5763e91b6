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

// Package editor implements the documents and tabs of coder.
// An editor manages a list of tabs, one of which is active; each tab
// edits an associated buffer and remembers its file, cursor, selection
// and line marks. Most changes to a tab are made through operations;
// this makes it possible to undo them.
package editor
