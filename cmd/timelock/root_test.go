package timelock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cli struct {
	t       *testing.T
	dir     string
	envFile string
}

func newCLI(t *testing.T, withKey bool) *cli {
	t.Helper()

	dir := t.TempDir()
	env := fmt.Sprintf("TIMELOCK_DB_PATH=%s\nTIMELOCK_LOG_LEVEL=error\n", filepath.Join(dir, "timelock.db"))
	if withKey {
		env += fmt.Sprintf("TIMELOCK_PRIVATE_KEY=%s\n", solana.NewWallet().PrivateKey.String())
	}
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(env), 0o600))

	return &cli{t: t, dir: dir, envFile: envFile}
}

func (c *cli) run(args ...string) ([]byte, error) {
	cmd := BuildTimelockCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--env", c.envFile}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.Bytes(), err
}

func (c *cli) mustRun(args ...string) map[string]any {
	c.t.Helper()

	out, err := c.run(args...)
	require.NoError(c.t, err, "timelock %v", args)

	var got map[string]any
	require.NoError(c.t, json.Unmarshal(out, &got))

	return got
}

func (c *cli) writeFile(name string, data []byte) string {
	c.t.Helper()

	path := filepath.Join(c.dir, name)
	require.NoError(c.t, os.WriteFile(path, data, 0o600))

	return path
}

func TestCLI_GovernedTransaction(t *testing.T) {
	t.Parallel()

	c := newCLI(t, true)

	initOut := c.mustRun("init", "--delay", "2")
	tl := initOut["timelock"].(string)

	opOut, err := c.run("governed", "--timelock", tl, "set-delay", "--delay", "7")
	require.NoError(t, err)
	opPath := c.writeFile("op.json", opOut)

	created := c.mustRun("create-tx", "--timelock", tl, "--operation", opPath)
	tx := created["transaction"].(string)

	_, err = c.run("execute-tx", "--timelock", tl, "--tx", tx)
	require.ErrorContains(t, err, "operation not ready")

	c.mustRun("slot", "advance", "--by", "3")

	executed := c.mustRun("execute-tx", "--timelock", tl, "--tx", tx)
	record := executed["record"].(map[string]any)
	assert.Equal(t, true, record["didExecute"])

	inspected := c.mustRun("inspect", "--timelock", tl)
	config := inspected["record"].(map[string]any)
	assert.InDelta(t, 7, config["delayInSlots"], 0)

	txView := c.mustRun("inspect", "--tx", tx)
	state := txView["state"].(map[string]any)
	assert.Equal(t, true, state["done"])
	decoded := txView["decoded"].(map[string]any)
	assert.Contains(t, decoded, "0")
}

func TestCLI_BatchLifecycle(t *testing.T) {
	t.Parallel()

	c := newCLI(t, true)

	tl := c.mustRun("init", "--delay", "0")["timelock"].(string)

	memo, err := json.Marshal(map[string]any{
		"programId": solana.MemoProgramID.String(),
		"accounts":  []any{},
		"data":      []byte("hello"),
	})
	require.NoError(t, err)
	opPath := c.writeFile("memo.json", memo)

	batch := c.mustRun("create-batch", "--timelock", tl, "--capacity", "2")["batch"].(string)
	c.mustRun("add-op", "--batch", batch, "--operation", opPath)
	c.mustRun("add-op", "--batch", batch, "--operation", opPath)

	_, err = c.run("add-op", "--batch", batch, "--operation", opPath)
	require.ErrorContains(t, err, "batch full")

	c.mustRun("seal", "--batch", batch)
	enqueued := c.mustRun("enqueue", "--batch", batch)
	assert.Equal(t, "Enqueued", enqueued["record"].(map[string]any)["status"])

	c.mustRun("slot", "advance")

	first := c.mustRun("execute-next", "--timelock", tl, "--batch", batch)
	assert.InDelta(t, 0, first["executed"], 0)
	second := c.mustRun("execute-next", "--timelock", tl, "--batch", batch)
	assert.InDelta(t, 1, second["executed"], 0)
	assert.Equal(t, "Executed", second["record"].(map[string]any)["status"])

	_, err = c.run("cancel", "--batch", batch)
	require.ErrorContains(t, err, "invalid state")
}

func TestCLI_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		withKey bool
		args    []string
		wantErr string
	}{
		{
			name:    "init without key",
			args:    []string{"init"},
			wantErr: "TIMELOCK_PRIVATE_KEY is not set",
		},
		{
			name:    "invalid timelock",
			withKey: true,
			args:    []string{"inspect", "--timelock", "not-a-key"},
			wantErr: "invalid --timelock",
		},
		{
			name:    "inspect without target",
			withKey: true,
			args:    []string{"inspect"},
			wantErr: "one of --timelock, --tx or --batch is required",
		},
		{
			name:    "unknown timelock",
			withKey: true,
			args:    []string{"inspect", "--timelock", solana.SystemProgramID.String()},
			wantErr: "account not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newCLI(t, tt.withKey).run(tt.args...)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCLI_Slot(t *testing.T) {
	t.Parallel()

	c := newCLI(t, false)

	assert.InDelta(t, 0, c.mustRun("slot", "show")["slot"], 0)
	assert.InDelta(t, 5, c.mustRun("slot", "advance", "--by", "5")["slot"], 0)
	assert.InDelta(t, 5, c.mustRun("slot", "show")["slot"], 0)
}
