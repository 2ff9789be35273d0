package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/LeJamon/xrpl-wasm-stdlib/emulator"
	"github.com/LeJamon/xrpl-wasm-stdlib/sfield"
	"github.com/LeJamon/xrpl-wasm-stdlib/wasmhost"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// dataFieldCode addresses the escrow's guest-writable Data field.
var dataFieldCode = sfield.Data.Code()

var runCmd = &cobra.Command{
	Use:   "run <program.wasm> <fixture.json> [fixture.json...]",
	Short: "Execute an escrow finish program against one or more fixtures",
	Long: `run compiles the given WebAssembly escrow program and calls its finish
export once per fixture. Fixtures execute concurrently; each gets an
isolated emulated host. The exit status is non-zero if any finish call
errors or returns a negative code.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEscrows,
}

func init() {
	runCmd.Flags().Duration("timeout", 30*time.Second, "per-fixture execution timeout")
	runCmd.Flags().Bool("show-data", false, "print the escrow Data field after execution")
	viper.BindPFlag("timeout", runCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("show-data", runCmd.Flags().Lookup("show-data"))

	rootCmd.AddCommand(runCmd)
}

// runResult captures one fixture execution for reporting.
type runResult struct {
	fixture string
	code    int32
	traces  []emulator.Trace
	data    []byte
	err     error
}

func runEscrows(cmd *cobra.Command, args []string) error {
	wasmPath, fixtures := args[0], args[1:]
	wasmCode, err := os.ReadFile(wasmPath)
	if err != nil {
		return err
	}

	timeout := viper.GetDuration("timeout")
	showData := viper.GetBool("show-data")

	results := make([]runResult, len(fixtures))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, path := range fixtures {
		g.Go(func() error {
			res := runOne(ctx, wasmCode, path, timeout, showData)
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		report(cmd, res, showData)
		if res.err != nil || res.code < 0 {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d fixtures failed", failed, len(results))
	}
	return nil
}

func runOne(ctx context.Context, wasmCode []byte, fixturePath string, timeout time.Duration, showData bool) runResult {
	res := runResult{fixture: fixturePath}

	em, err := LoadFixture(fixturePath)
	if err != nil {
		res.err = err
		return res
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	runner := wasmhost.New(em)
	res.code, res.err = runner.RunFinish(runCtx, wasmCode)
	res.traces = em.Traces()
	if showData && res.err == nil {
		res.data = currentEscrowData(em)
	}
	return res
}

func currentEscrowData(em *emulator.Emulator) []byte {
	buf := make([]byte, 4096)
	n := em.GetCurrentLedgerObjField(dataFieldCode, buf)
	if n < 0 {
		return nil
	}
	return buf[:n]
}

func report(cmd *cobra.Command, res runResult, showData bool) {
	out := cmd.OutOrStdout()
	switch {
	case res.err != nil:
		fmt.Fprintf(out, "%s: error: %v\n", res.fixture, res.err)
	case res.code > 0:
		fmt.Fprintf(out, "%s: finish (code %d)\n", res.fixture, res.code)
	case res.code == 0:
		fmt.Fprintf(out, "%s: reject\n", res.fixture)
	default:
		fmt.Fprintf(out, "%s: guest error (code %d)\n", res.fixture, res.code)
	}
	if !quiet {
		for _, tr := range res.traces {
			if tr.Detail != "" {
				fmt.Fprintf(out, "  trace: %s %s\n", tr.Message, tr.Detail)
			} else {
				fmt.Fprintf(out, "  trace: %s\n", tr.Message)
			}
		}
	}
	if showData && res.data != nil {
		fmt.Fprintf(out, "  data: %s\n", hex.EncodeToString(res.data))
	}
}
