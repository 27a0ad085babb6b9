package cli

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xecrets/slip39/pkg/correlation"
	"github.com/xecrets/slip39/pkg/metrics"
	"github.com/xecrets/slip39/pkg/slip39"
	"github.com/xecrets/slip39/pkg/wordlist"
)

var (
	combMnemonicFile string
	combPassphrase   string
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Recombine SLIP-39 mnemonic shares into the master secret",
	RunE:  runCombine,
}

func init() {
	combineCmd.Flags().StringVar(&combMnemonicFile, "mnemonic-file", "-", "file of one mnemonic per line (- for stdin)")
	combineCmd.Flags().StringVar(&combPassphrase, "passphrase", "", "optional passphrase")
}

func runCombine(cmd *cobra.Command, args []string) error {
	start := time.Now()
	id := correlation.New()

	l, err := loadWordlist()
	if err != nil {
		return fail(err)
	}

	sentences, err := readMnemonicLines(combMnemonicFile)
	if err != nil {
		return fail(err)
	}

	shares := make([]slip39.Share, len(sentences))
	for i, sentence := range sentences {
		s, err := slip39.FromMnemonic(sentence, l)
		if err != nil {
			return fail(fmt.Errorf("line %d: %w", i+1, err))
		}
		shares[i] = s
	}

	secret, err := slip39.Combine(shares, []byte(combPassphrase))
	metrics.RecordCombine(err)
	metrics.OperationDuration.WithLabelValues(metrics.OpCombine).Observe(time.Since(start).Seconds())
	if err != nil {
		return fail(err)
	}

	if cfg.Output.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(struct {
			SeedHex string `json:"seed_hex"`
		}{SeedHex: hex.EncodeToString(secret)}); err != nil {
			return fail(err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(secret))
	}
	logger.Debugf("combine completed: correlation_id=%s shares=%d", id, len(shares))
	return nil
}

func loadWordlist() (*wordlist.List, error) {
	if cfg.Wordlist.Path == "" {
		return wordlist.English(), nil
	}
	data, err := os.ReadFile(cfg.Wordlist.Path)
	if err != nil {
		return nil, fmt.Errorf("reading wordlist %s: %w", cfg.Wordlist.Path, err)
	}
	return wordlist.New(strings.Fields(string(data)))
}

func readMnemonicLines(path string) ([]string, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no mnemonics found in %s", path)
	}
	return lines, nil
}
