package logging

import (
	"go.uber.org/zap/zapcore"
)

// WinnerField is the structured field a clash result is logged with.
const WinnerField = "winner"

// winnerFilterCore drops info entries that report a clash without a winner.
type winnerFilterCore struct {
	zapcore.Core
	noWinner bool
}

// NewWinnerFilter wraps core so that info entries carrying winner=0 are never written.
func NewWinnerFilter(core zapcore.Core) zapcore.Core {
	return &winnerFilterCore{Core: core}
}

func (c *winnerFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &winnerFilterCore{
		Core:     c.Core.With(fields),
		noWinner: c.noWinner || hasNoWinner(fields),
	}
}

func (c *winnerFilterCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *winnerFilterCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if ent.Level == zapcore.InfoLevel && (c.noWinner || hasNoWinner(fields)) {
		return nil
	}
	// A tee writes to every member on Write, so let the wrapped core pick
	// the members whose level admits this entry.
	if checked := c.Core.Check(ent, nil); checked != nil {
		checked.Write(fields...)
	}
	return nil
}

func hasNoWinner(fields []zapcore.Field) bool {
	for _, f := range fields {
		if f.Key != WinnerField {
			continue
		}
		switch f.Type {
		case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
			zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
			return f.Integer == 0
		}
	}
	return false
}
