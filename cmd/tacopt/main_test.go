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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitPasses(t *testing.T) {
	require.Equal(t, []string{"constprop"}, splitPasses(" constprop, "))
	require.Nil(t, splitPasses(""))
}

func TestHighlight(t *testing.T) {
	require.Equal(t, "\x1b[1mfunc f\x1b[0m\nbb_0:\n    exit", highlight("func f\nbb_0:\n    exit"))
}

func TestLoadOptions(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tacopt.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("strict: true\ndebug: true\n"), 0644))
	ConfigFile = fn
	defer func() { ConfigFile = "" }()

	/* flags that were not set keep the file's values */
	o, err := loadOptions()
	require.NoError(t, err)
	require.True(t, o.Strict)
	require.True(t, o.Debug)

	/* explicit flags win */
	require.NoError(t, flag.Set("debug", "false"))
	require.NoError(t, flag.Set("passes", ""))
	o, err = loadOptions()
	require.NoError(t, err)
	require.True(t, o.Strict)
	require.False(t, o.Debug)
	require.Empty(t, o.Passes)

	ConfigFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = loadOptions()
	require.Error(t, err)
}
