package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lynx-bridge/core/history"
	"lynx-bridge/core/race"
	"lynx-bridge/core/reconcile"
	"lynx-bridge/core/textenc"
	"lynx-bridge/feature/update"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintUpdateReport(t *testing.T) {
	var buf bytes.Buffer
	printUpdateReport(&buf, &update.Result{
		Added:     1,
		Updated:   1,
		Unchanged: 2,
		DryRun:    true,
		Actions: []reconcile.Action{
			{Type: reconcile.ActionAdd, Key: "10", EventName: "Open (500m) Final"},
			{Type: reconcile.ActionUpdate, Key: "3A", EventName: "Open (1000m) Heat", Reasons: []string{"laps: evt=4 csv=9", "skaters: evt=1 csv=2"}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "add    race 10    Open (500m) Final\n")
	assert.Contains(t, out, "[laps: evt=4 csv=9; skaters: evt=1 csv=2]")
	assert.Contains(t, out, "Dry run: EVT file not written\n")
	assert.Contains(t, out, "Races: 1 added, 1 updated, 2 unchanged\n")
}

func TestPrintSources(t *testing.T) {
	l := 4.5
	sources := []race.Source{
		{Number: "1", Parameters: "500m", Group: "Junior Female", Stage: "Final", Laps: &l,
			Skaters: []race.SourceSkater{{Lane: 1, ID: "7", LastName: "DOE", FirstName: "JANE", Club: "X"}}},
	}

	var buf bytes.Buffer
	printSources(&buf, sources, []string{"female"}, nil, true)
	out := buf.String()
	assert.Contains(t, out, "Junior (500m) Final")
	assert.Contains(t, out, "4.5")
	assert.Contains(t, out, "lane 1: 7 DOE, JANE")
	assert.Contains(t, out, "1 races\n")

	buf.Reset()
	override := 9.0
	printSources(&buf, sources, nil, &override, false)
	assert.Contains(t, buf.String(), "Junior Female (500m) Final")
	assert.NotContains(t, buf.String(), "4.5")
	assert.NotContains(t, buf.String(), "lane 1")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, []history.UpdateRecord{
		{RunAt: time.Now(), EVTPath: "a.evt", Added: 2, Total: 2, DryRun: true},
		{RunAt: time.Now(), EVTPath: "b.evt", Updated: 1, Total: 5, BackupPath: "backups/b.1.evt"},
	})

	out := buf.String()
	assert.Contains(t, out, "dry run")
	assert.Contains(t, out, "backup backups/b.1.evt")
}

func TestShowCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lynx.evt")
	content := "25A,,,\"Late\",,,,,,,,,2.5\r\n,b,2\r\n,a,1\r\n3A,,,\"Early\",,,,,,,,,\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"show", "--evt", path})
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})

	require.NoError(t, RootCmd.Execute())

	out := buf.String()
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Early")), bytes.Index(buf.Bytes(), []byte("Late")))
	assert.Contains(t, out, "1:a 2:b")
	assert.Contains(t, out, "2 races\n")
}

// runUpdateIn executes the update command from an empty working directory so
// the default journal path would land there.
func runUpdateIn(t *testing.T, args ...string) (string, error) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	csvPath := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Event :,500m,Open,Stage :,Final,Race,1\r\n"), 0o644))

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs(append([]string{"update", "--config", dir, "--evt", "lynx.evt", "--csv", csvPath}, args...))
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
		configDir = "."
		updateEVT, updateCSV, updateEncoding = "", nil, ""
		updateLaps = 0
	})

	return dir, RootCmd.Execute()
}

func TestUpdateCommand_UnsupportedEncodingCreatesNothing(t *testing.T) {
	dir, err := runUpdateIn(t, "--encoding", "latin1")
	assert.ErrorIs(t, err, textenc.ErrUnsupportedEncoding)
	assert.NoFileExists(t, filepath.Join(dir, "lynx-bridge.db"))
	assert.NoFileExists(t, filepath.Join(dir, "lynx.evt"))
}

func TestUpdateCommand_NegativeLapsCreatesNothing(t *testing.T) {
	dir, err := runUpdateIn(t, "--laps=-1")
	assert.ErrorIs(t, err, errNegativeLaps)
	assert.NoFileExists(t, filepath.Join(dir, "lynx-bridge.db"))
	assert.NoFileExists(t, filepath.Join(dir, "lynx.evt"))
}
