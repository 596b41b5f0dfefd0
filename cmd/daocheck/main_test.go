package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/daocheck/report"
	"go.uber.org/zap"
)

var sources = map[string]string{
	"src/main/java/acme/Invoice.java": "public class Invoice {}",
	"src/main/java/acme/InvoiceDAO.java": `public class InvoiceDAO {
    public Invoice get(long id) { return null; }
    public void remove(Car car) {}
}`,
}

func workspace(t *testing.T) string {
	dir := t.TempDir()
	for name, content := range sources {
		location := filepath.Join(dir, name)
		require.Nil(t, os.MkdirAll(filepath.Dir(location), 0755))
		require.Nil(t, os.WriteFile(location, []byte(content), 0644))
	}
	return dir
}

func execute(args ...string) (string, error) {
	a := newApp()
	a.logger = zap.NewNop()
	cmd := a.command()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(output)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}

func TestCheckCmd(t *testing.T) {
	dir := workspace(t)

	output, err := execute(dir)
	assert.True(t, errors.Is(err, errViolations))
	assert.Contains(t, output, "InvoiceDAO (entity: Invoice)")
	assert.Contains(t, output, "FAIL  remove/1[Car]")

	output, err = execute("check", dir, "--fail-on-violation=false", "--verbose")
	assert.Nil(t, err)
	assert.Contains(t, output, "ok    get/1[long]")

	output, err = execute("check", dir, "--format", "json", "--fail-on-violation=false")
	require.Nil(t, err)
	decoded := &report.Report{}
	require.Nil(t, json.Unmarshal([]byte(output), decoded))
	require.Len(t, decoded.Classes, 1)
	assert.Equal(t, []string{"remove/1[Car]"}, decoded.Classes[0].NonConforming)

	_, err = execute("check", dir, "--format", "xml")
	assert.NotNil(t, err)
	assert.False(t, errors.Is(err, errViolations))
}

func TestCheckCmd_ProjectConfig(t *testing.T) {
	dir := workspace(t)
	require.Nil(t, os.WriteFile(filepath.Join(dir, "daocheck.yaml"), []byte("failOnViolation: false\nformat: yaml\n"), 0644))

	output, err := execute("check", dir)
	assert.Nil(t, err)
	assert.Contains(t, output, "nonConforming:")

	_, err = execute("check", dir, "--fail-on-violation")
	assert.True(t, errors.Is(err, errViolations))
}

func TestBaselineCmd(t *testing.T) {
	dir := workspace(t)
	baselineFile := filepath.Join(dir, "baseline.yaml")

	output, err := execute("baseline", dir, "-o", baselineFile)
	require.Nil(t, err)
	assert.Contains(t, output, "recorded 1 violations")

	output, err = execute("check", dir, "--baseline", baselineFile)
	assert.Nil(t, err)
	assert.Contains(t, output, "skip  remove/1[Car]")

	require.Nil(t, os.WriteFile(filepath.Join(dir, "src/main/java/acme/OrderDAO.java"), []byte("public class OrderDAO { public Car car() { return null; } }"), 0644))
	_, err = execute("check", dir, "--baseline", baselineFile)
	assert.True(t, errors.Is(err, errViolations))
}

func TestCheckCmd_OutputFile(t *testing.T) {
	dir := workspace(t)
	reportFile := filepath.Join(dir, "report.txt")
	output, err := execute("check", dir, "-o", reportFile, "--fail-on-violation=false")
	require.Nil(t, err)
	assert.Empty(t, output)
	data, err := os.ReadFile(reportFile)
	require.Nil(t, err)
	assert.Contains(t, string(data), "remove/1[Car]")
}

func TestVersionCmd(t *testing.T) {
	output, err := execute("version")
	assert.Nil(t, err)
	assert.Equal(t, "daocheck dev\n", output)
}

func TestCheckCmd_ProjectBaseline(t *testing.T) {
	dir := workspace(t)
	require.Nil(t, os.WriteFile(filepath.Join(dir, "daocheck.yaml"), []byte("baseline: ci/baseline.yaml\n"), 0644))

	_, err := execute("baseline", dir, "-o", filepath.Join(dir, "ci", "baseline.yaml"))
	require.Nil(t, err)

	output, err := execute("check", dir)
	assert.Nil(t, err)
	assert.Contains(t, output, "skip  remove/1[Car]")
}
