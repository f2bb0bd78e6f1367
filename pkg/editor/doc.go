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

// Package editor holds the documents of an editing session.
//
// A Document owns one gap buffer, the undo journal recording its edits,
// and the cursor viewing it. Documents live in a Registry, a ring with
// one current document. A Session ties the registry to the state shared
// between documents: the clipboard, the last search and the size of the
// editing area.
//
// Every edit made through a Document goes through buffer.Buffer.Replace,
// so it is recorded for undo and marks the document dirty.
package editor
