package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/raktsetu/bloodbank-cli/internal/config"
	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/ledger"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Ledger *ledger.Ledger
	Logger *zap.Logger
	Ctx    context.Context
}

// stdin is shared between the interactive loop and confirmation prompts so
// buffered input is never lost between readers.
var stdin = bufio.NewReader(os.Stdin)

// confirm asks a yes/no question and reports the answer. Anything other
// than y/yes counts as a decline.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// printTokenQR renders a token as a scannable terminal QR block
func printTokenQR(value string) {
	code, err := qrcode.New(value, qrcode.Medium)
	if err != nil {
		return
	}
	fmt.Println(code.ToSmallString(false))
}

// normalizeToken trims and upper-cases a user-supplied RTID
func normalizeToken(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}

func stockEmoji(level model.StockLevel) string {
	switch level {
	case model.StockGood:
		return "✅"
	case model.StockLow:
		return "⚠️"
	default:
		return "🚨"
	}
}

func categoryIcon(category model.NotificationCategory) string {
	switch category {
	case model.NotifySuccess:
		return "✅"
	case model.NotifyWarning:
		return "⚠️"
	case model.NotifyError:
		return "❌"
	default:
		return "ℹ️"
	}
}
