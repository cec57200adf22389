package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"fixturegen/pkg/writer"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// resetFlags restores every flag to its default so package-level commands can
// be executed more than once
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags(rootCmd)
	rootCmd.SetArgs(append(args, "--quiet", "--no-banner"))
	return rootCmd.Execute()
}

// executeLoud runs a command with console output captured instead of silenced
func executeLoud(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	t.Cleanup(func() { pterm.SetDefaultOutput(os.Stdout) })

	resetFlags(rootCmd)
	rootCmd.SetArgs(append(args, "--no-banner"))
	err := rootCmd.Execute()
	return pterm.RemoveColorFromString(buf.String()), err
}

func readInts(t *testing.T, path string) []int64 {
	t.Helper()
	var values []int64
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, writer.ReadInts(f, func(line int64, v int64) error {
		values = append(values, v)
		return nil
	}))
	return values
}

func TestRandomCommandReplicas(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, "random", "--dir", dir, "--n", "10", "--min", "5", "--max", "3",
		"--seed", "7", "--total-files", "3", "--workers", "2")
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(dir, "1_10.txt"))
	require.NoError(t, err)
	for _, name := range []string{"2_10.txt", "3_10.txt"} {
		other, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, first, other, name)
	}
	assert.NoFileExists(t, filepath.Join(dir, "4_10.txt"))

	values := readInts(t, filepath.Join(dir, "1_10.txt"))
	require.Len(t, values, 10)
	assert.True(t, slices.IsSorted(values))
	for _, v := range values {
		assert.GreaterOrEqual(t, v, int64(5))
		assert.LessOrEqual(t, v, int64(50))
	}
}

func TestRandomCommandProgressLine(t *testing.T) {
	dir := t.TempDir()

	out, err := executeLoud(t, "random", "--dir", dir, "--n", "10", "--min", "5", "--max", "3",
		"--seed", "7", "--total-files", "2")
	require.NoError(t, err)

	for _, name := range []string{"1_10.txt", "2_10.txt"} {
		assert.Contains(t, out, "Writing 10 random nums from 5 to 50 into file "+filepath.Join(dir, name))
	}
}

func TestRandomCommandSeedIsReproducible(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()

	require.NoError(t, execute(t, "random", "--dir", dirA, "--seed", "1234", "--filename", "nums.txt"))
	require.NoError(t, execute(t, "random", "--dir", dirB, "--seed", "1234", "--filename", "nums.txt"))

	a, err := os.ReadFile(filepath.Join(dirA, "1_nums.txt"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dirB, "1_nums.txt"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, strings.Split(strings.TrimSuffix(string(a), "\n"), "\n"), 100)
}

func TestRandomCommandEmptyRange(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, "random", "--dir", dir, "--n", "10", "--min", "1000")
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "1_10.txt"))
}

func TestRandomCommandManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "manifest.yaml")

	require.NoError(t, execute(t, "random", "--dir", dir, "--n", "4", "--seed", "9",
		"--total-files", "2", "--manifest", manifest))

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)

	var decoded struct {
		Generator string `yaml:"generator"`
		Params    struct {
			Max  int64  `yaml:"max"`
			Seed uint64 `yaml:"seed"`
		} `yaml:"params"`
		Files []writer.Result `yaml:"files"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, "random", decoded.Generator)
	assert.Equal(t, int64(20), decoded.Params.Max)
	assert.Equal(t, uint64(9), decoded.Params.Seed)
	require.Len(t, decoded.Files, 2)
	assert.Equal(t, filepath.Join(dir, "2_4.txt"), decoded.Files[1].Path)
	assert.Equal(t, int64(4), decoded.Files[1].Lines)
}

func TestRandomCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	config := "random:\n  count: 7\n  min: 100\n  max: 200\n  seed: 3\noutput:\n  dir: " + dir + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0600))

	require.NoError(t, execute(t, "random", "--config", configPath))

	values := readInts(t, filepath.Join(dir, "1_7.txt"))
	require.Len(t, values, 7)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, int64(100))
		assert.LessOrEqual(t, v, int64(200))
	}

	// flags win over the config file
	require.NoError(t, execute(t, "random", "--config", configPath, "--n", "3"))
	assert.Len(t, readInts(t, filepath.Join(dir, "1_3.txt")), 3)
}

func TestMissingExplicitConfig(t *testing.T) {
	err := execute(t, "random", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCanonicalCommand(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, execute(t, "canonical", "--dir", dir, "--max-number", "10", "--workers", "3"))

	expected := map[string]string{
		"empty.txt":    "",
		"zero.txt":     "0\n",
		"nonzero.txt":  "1\n2\n3\n4\n5\n6\n7\n8\n9\n",
		"naturals.txt": "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n",
		"odds.txt":     "1\n3\n5\n7\n9\n",
		"evens.txt":    "0\n2\n4\n6\n8\n",
	}
	for name, content := range expected {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, content, string(data), name)
	}
}

func TestCanonicalCommandDefaultBound(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()

	require.NoError(t, execute(t, "canonical", "--dir", dirA, "--only", "naturals"))
	require.NoError(t, execute(t, "canonical", "--dir", dirB, "--only", "naturals"))
	assert.NoFileExists(t, filepath.Join(dirA, "odds.txt"))

	a, err := os.ReadFile(filepath.Join(dirA, "naturals.txt"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dirB, "naturals.txt"))
	require.NoError(t, err)
	require.Equal(t, a, b)

	values := readInts(t, filepath.Join(dirA, "naturals.txt"))
	require.Len(t, values, 1000000)
	for i, v := range values {
		if v != int64(i) {
			t.Fatalf("line %d holds %d", i, v)
		}
	}
}

func TestCanonicalCommandUnknownSet(t *testing.T) {
	err := execute(t, "canonical", "--dir", t.TempDir(), "--only", "zero,primes")
	assert.Error(t, err)
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	unsorted := filepath.Join(dir, "unsorted.txt")
	require.NoError(t, os.WriteFile(good, []byte("1\n2\n2\n8\n"), 0600))
	require.NoError(t, os.WriteFile(unsorted, []byte("3\n1\n"), 0600))

	assert.NoError(t, execute(t, "verify", good))
	assert.NoError(t, execute(t, "verify", good, "--min", "1", "--max", "8"))
	assert.Error(t, execute(t, "verify", good, "--max", "5"))
	assert.Error(t, execute(t, "verify", good, unsorted))
	assert.NoError(t, execute(t, "verify", unsorted, "--sorted=false"))
	assert.Error(t, execute(t, "verify"))
}

func TestVerifyGeneratedFixtures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, "random", "--dir", dir, "--n", "50", "--min", "-10", "--max", "10"))
	require.NoError(t, execute(t, "canonical", "--dir", dir, "--max-number", "100"))

	args := []string{"verify", filepath.Join(dir, "1_50.txt")}
	for _, name := range []string{"empty", "zero", "nonzero", "naturals", "odds", "evens"} {
		args = append(args, filepath.Join(dir, name+".txt"))
	}
	assert.NoError(t, execute(t, args...))

	assert.NoError(t, execute(t, "verify", filepath.Join(dir, "1_50.txt"), "--min", "-10", "--max", strconv.Itoa(10)))
}
