// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/configuration"
	"github.com/bitmark-inc/creatured/fault"
)

type databaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Database      databaseType      `gluamapper:"database"`
	Listen        []string          `gluamapper:"listen"`
	Maximum       uint64            `gluamapper:"maximum"`
	Reject        bool              `gluamapper:"reject"`
	Levels        map[string]string `gluamapper:"levels"`
	Untouched     string            `gluamapper:"untouched"`
}

const luaText = `
local M = {}

M.data_directory = "."
M.database = {
    directory = "data",
    name = "creatures",
}
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.maximum = 5 * 2
M.reject = true
M.levels = {
    main = "info",
    DEFAULT = "critical",
}

return M
`

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, luaText)
	defer cleanup()

	c := testConfiguration{
		Untouched: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "parse")

	assert.Equal(t, ".", c.DataDirectory, "data directory")
	assert.Equal(t, databaseType{Directory: "data", Name: "creatures"}, c.Database, "database")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.Listen, "listen")
	assert.Equal(t, uint64(10), c.Maximum, "maximum")
	assert.True(t, c.Reject, "reject")
	assert.Equal(t, "critical", c.Levels["DEFAULT"], "levels")
	assert.Equal(t, "default", c.Untouched, "default overwritten")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	var c testConfiguration

	err := configuration.ParseConfigurationFile("/nonexistent/test.conf", &c)
	assert.NotNil(t, err, "missing file")

	err = configuration.ParseConfigurationFile("/nonexistent/test.conf", c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	n := 0
	err = configuration.ParseConfigurationFile("/nonexistent/test.conf", &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")

	fileName, cleanup := writeFile(t, "this is not lua")
	defer cleanup()
	err = configuration.ParseConfigurationFile(fileName, &c)
	assert.NotNil(t, err, "syntax error")

	fileName2, cleanup2 := writeFile(t, "return 42\n")
	defer cleanup2()
	err = configuration.ParseConfigurationFile(fileName2, &c)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "not a table")
}
