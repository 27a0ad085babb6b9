package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xecrets/slip39/pkg/correlation"
	"github.com/xecrets/slip39/pkg/csprng"
	"github.com/xecrets/slip39/pkg/metrics"
	"github.com/xecrets/slip39/pkg/slip39"
)

var (
	genGroupThreshold    int
	genGroups            []string
	genSeedHex           string
	genPassphrase        string
	genIterationExponent uint8
	genExtendable        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Split a master secret into SLIP-39 mnemonic shares",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genGroupThreshold, "group-threshold", 1, "number of groups required to recover the secret")
	generateCmd.Flags().StringArrayVar(&genGroups, "group", nil, "group spec threshold:count, repeatable")
	generateCmd.Flags().StringVar(&genSeedHex, "seed-hex", "", "master secret, as hex")
	generateCmd.Flags().StringVar(&genPassphrase, "passphrase", "", "optional passphrase")
	generateCmd.Flags().Uint8Var(&genIterationExponent, "iteration-exponent", 0, "PBKDF2 iteration exponent (0..15)")
	generateCmd.Flags().BoolVar(&genExtendable, "extendable", false, "produce an extendable share set")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	id := correlation.New()

	// Flags win; unset flags fall back to the loaded config defaults.
	if !cmd.Flags().Changed("iteration-exponent") {
		genIterationExponent = cfg.Generate.IterationExponent
	}
	if !cmd.Flags().Changed("extendable") {
		genExtendable = cfg.Generate.Extendable
	}

	groups, err := parseGroups(genGroups)
	if err != nil {
		return fail(err)
	}
	seed, err := hex.DecodeString(genSeedHex)
	if err != nil {
		return fail(fmt.Errorf("invalid --seed-hex: %w", err))
	}

	rng := csprng.New()
	shares, err := slip39.Generate(rng, genGroupThreshold, groups, seed, []byte(genPassphrase),
		genIterationExponent, genExtendable)
	metrics.RecordGenerate(err)
	metrics.OperationDuration.WithLabelValues(metrics.OpGenerate).Observe(time.Since(start).Seconds())
	if err != nil {
		return fail(err)
	}

	l, err := loadWordlist()
	if err != nil {
		return fail(err)
	}
	mnemonics := make([]string, len(shares))
	for i, s := range shares {
		mnemonic, err := s.ToMnemonic(l)
		if err != nil {
			return fail(err)
		}
		mnemonics[i] = mnemonic
	}

	if cfg.Output.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(struct {
			Shares []string `json:"shares"`
		}{Shares: mnemonics}); err != nil {
			return fail(err)
		}
	} else {
		for _, mnemonic := range mnemonics {
			fmt.Fprintln(cmd.OutOrStdout(), mnemonic)
		}
	}

	logger.Debugf("generate completed: correlation_id=%s shares=%d", id, len(shares))
	return nil
}

// parseGroups turns "threshold:count" flag values into GroupConfig
// entries in the order they were given, matching the group_index that
// order implies.
func parseGroups(specs []string) ([]slip39.GroupConfig, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one --group is required")
	}
	groups := make([]slip39.GroupConfig, len(specs))
	for i, spec := range specs {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --group %q: expected threshold:count", spec)
		}
		threshold, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid --group %q: %w", spec, err)
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid --group %q: %w", spec, err)
		}
		groups[i] = slip39.GroupConfig{MemberThreshold: threshold, MemberCount: count}
	}
	return groups, nil
}
