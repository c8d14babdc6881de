package roster_test

import (
	"testing"

	"github.com/latoulicious/roster/pkg/database/testhelpers"
	"github.com/latoulicious/roster/pkg/logging"
	"github.com/latoulicious/roster/pkg/roster"
	"gorm.io/gorm"
)

type recordedEntry struct {
	Level   string
	Message string
	Err     error
	Fields  map[string]interface{}
}

// recordingLogger captures every emitted entry, including inherited context
type recordingLogger struct {
	entries *[]recordedEntry
	context map[string]interface{}
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{
		entries: &[]recordedEntry{},
		context: map[string]interface{}{},
	}
}

func (r *recordingLogger) record(level, msg string, err error, fields map[string]interface{}) {
	merged := make(map[string]interface{}, len(r.context)+len(fields))
	for k, v := range r.context {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	*r.entries = append(*r.entries, recordedEntry{Level: level, Message: msg, Err: err, Fields: merged})
}

func (r *recordingLogger) Info(msg string, fields map[string]interface{}) {
	r.record("INFO", msg, nil, fields)
}

func (r *recordingLogger) Error(msg string, err error, fields map[string]interface{}) {
	r.record("ERROR", msg, err, fields)
}

func (r *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	r.record("WARN", msg, nil, fields)
}

func (r *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	r.record("DEBUG", msg, nil, fields)
}

func (r *recordingLogger) WithOperation(operation string) logging.Logger {
	return r.WithContext(map[string]interface{}{"operation": operation})
}

func (r *recordingLogger) WithContext(ctx map[string]interface{}) logging.Logger {
	merged := make(map[string]interface{}, len(r.context)+len(ctx))
	for k, v := range r.context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &recordingLogger{entries: r.entries, context: merged}
}

func (r *recordingLogger) byLevel(level string) []recordedEntry {
	var out []recordedEntry
	for _, e := range *r.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// scriptedRandom replays fixed draws so clash selection is predictable
type scriptedRandom struct {
	t      *testing.T
	values []int
}

func (s *scriptedRandom) IntN(n int) int {
	if len(s.values) == 0 {
		s.t.Fatalf("scripted random exhausted (IntN(%d))", n)
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v >= n {
		s.t.Fatalf("scripted value %d out of range for IntN(%d)", v, n)
	}
	return v
}

func newTestStore(t *testing.T, opts ...roster.Option) (*roster.Store, *gorm.DB, *recordingLogger) {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	logger := newRecordingLogger()
	return roster.NewStore(db, logger, opts...), db, logger
}
