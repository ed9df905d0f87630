package report

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/walteh/renamerc/pkg/plan"
)

// 📢 UserLogger provides user-friendly feedback while changes are applied.
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 ItemChangeType represents what happened to one planned rename.
type ItemChangeType int

const (
	ItemRenamed ItemChangeType = iota
	ItemSkipped
	ItemFailed
)

// 🖼️ ItemChange represents the result of applying one plan item.
type ItemChange struct {
	Type   ItemChangeType
	Item   plan.Item
	Reason string
	Error  error
}

// 🎯 NewUserLogger creates a new user logger.
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogItemChange logs an item result with appropriate emoji and formatting.
func (u *UserLogger) LogItemChange(change ItemChange) {
	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case ItemRenamed:
		prefix = "✨"
		action = "Renamed"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case ItemSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case ItemFailed:
		prefix = "❌"
		action = "Failed"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s -> %s", action, change.Item.OriginalName, change.Item.NewName)
	if change.Reason != "" {
		msg += fmt.Sprintf(" (%s)", change.Reason)
	}

	if change.Error != nil {
		printer.Println(msg)
		pterm.Error.Println(change.Error)
		u.log.Error().Err(change.Error).Msg(msg) // Also log to zerolog for debugging
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg) // Also log to zerolog for debugging
	}
}

// 📊 LogStateChange logs a change to the overall run state.
func (u *UserLogger) LogStateChange(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results.
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}
