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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(`
slack = 1024
log = "/tmp/gted.log"
color = false
system_clipboard = true
`))
	require.NoError(t, err)
	assert.Equal(t, Config{Slack: 1024, Log: "/tmp/gted.log", Color: false, SystemClipboard: true}, c)
}

func TestParseKeepsDefaults(t *testing.T) {
	c, err := Parse(strings.NewReader(`color = false`))
	require.NoError(t, err)
	assert.Equal(t, Default().Slack, c.Slack)
	assert.Equal(t, Default().Log, c.Log)
	assert.False(t, c.Color)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		`slack = "big"`,
		`slack = 0`,
		`colour = true`,
		`slack = `,
	} {
		_, err := Parse(strings.NewReader(input))
		assert.Error(t, err, input)
	}
}

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("slack = 64\n"), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, c.Slack)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("slack = [\n"), 0o644))
	_, err := Load(path)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
}
