package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/inventory/config"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

// useInventory points the settings to a temporary inventory file with content
// ("" for a missing file), captures the outputs, and restores everything at
// the end of the test.
func useInventory(t *testing.T, content string) (file string, out, errOut *bytes.Buffer) {
	t.Helper()
	file = filepath.Join(t.TempDir(), "inventory.json")
	if content != "" {
		require.NoError(t, os.WriteFile(file, []byte(content), 0644))
	}

	oldSettings, oldOut, oldErr, oldStyle := settings, stdout, stderr, markdownStyle
	t.Cleanup(func() {
		settings, stdout, stderr, markdownStyle = oldSettings, oldOut, oldErr, oldStyle
	})

	settings = config.Default()
	settings.File = file
	out, errOut = new(bytes.Buffer), new(bytes.Buffer)
	stdout, stderr = out, errOut
	markdownStyle = ""
	return file, out, errOut
}

// run parses args for c and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c.Execute(context.Background(), f)
}

const sample = `[
  {"type":"Food","id":"F1","name":"Whole Milk","price":2.5,"quantity":10,"expiry":"2999-01-01"},
  {"type":"Food","id":"F2","name":"Old Bread","price":1,"quantity":4,"expiry":"2000-01-01"},
  {"type":"Electronic","id":"E1","name":"Phone","price":100,"quantity":3,"brand":"Acme","warranty":2}
]`
