package types

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var dateInputLayouts = []string{"2006-01-02", "02/01/2006"}

// Date reads a yyyy-mm-dd or dd/mm/yyyy date and returns it as yyyy-mm-dd.
// An empty value stays empty, the server then uses today.
func Date(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("fecha inválida %q, use aaaa-mm-dd o dd/mm/aaaa", s)
}

// Amount reads a monetary amount, accepting a leading "Q" and a comma as
// decimal separator.
func Amount(s string) (decimal.Decimal, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "Q")
	v = strings.ReplaceAll(v, ",", ".")
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monto inválido %q", s)
	}
	return d, nil
}

// Format resolves the output format of a list command. The global --json
// flag wins over --format.
func Format(cmd *cobra.Command, format string) string {
	if asJSON, err := cmd.Flags().GetBool("json"); err == nil && asJSON {
		return "json"
	}
	return format
}

// ID parses a record id argument.
func ID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido %q", arg)
	}
	return id, nil
}

// Confirm asks a yes/no question on the command's input. Only "s" and "si"
// count as yes.
func Confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (s/N): ", question)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí":
		return true, nil
	default:
		return false, nil
	}
}
