package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "INFO", Info.String())
	assert.Equal(t, "WARN", Warn.String())
	assert.Equal(t, "ERROR", Error.String())
	assert.True(t, Error.IsValid())
	assert.False(t, Severity(99).IsValid())
}

func TestListEmptyIsOK(t *testing.T) {
	var l List
	assert.True(t, l.OK())
	assert.Equal(t, Info, l.MaxSeverity())
	assert.Equal(t, 0, l.Len())
}

func TestListAddTracksMaxSeverity(t *testing.T) {
	var l List
	l.Info("loaded %d bytes", 10)
	assert.True(t, l.OK())
	assert.Equal(t, Info, l.MaxSeverity())

	l.Warn("type %q already specified", "string")
	assert.True(t, l.OK())
	assert.Equal(t, Warn, l.MaxSeverity())

	l.Error("missing required tag %q", "id")
	assert.False(t, l.OK())
	assert.Equal(t, Error, l.MaxSeverity())
	assert.Equal(t, 3, l.Len())
}

func TestListAbsorbPreservesSeverities(t *testing.T) {
	var inner List
	inner.Warn("inner warning")
	inner.Error("inner error")

	var outer List
	outer.Info("outer info")
	outer.Absorb(&inner)

	assert.Equal(t, Error, outer.MaxSeverity())
	assert.Equal(t, 3, outer.Len())
	assert.Equal(t, "inner warning", outer.Notes()[1].Message)
}

func TestListAbsorbNilIsNoop(t *testing.T) {
	var l List
	l.Info("one note")
	l.Absorb(nil)
	assert.Equal(t, 1, l.Len())
}

func TestListContext(t *testing.T) {
	var inner List
	inner.Error("bad integer bounds")

	var outer List
	outer.Context(Error, &inner, "failed processing array at line %d", 5)

	assert.Equal(t, 2, outer.Len())
	assert.Equal(t, Error, outer.MaxSeverity())
	assert.Contains(t, outer.Notes()[0].Message, "failed processing array")
	assert.Contains(t, outer.Notes()[1].Message, "bad integer bounds")
}

func TestSeverityMonotonicity(t *testing.T) {
	var l List
	prev := l.MaxSeverity()
	for _, sev := range []Severity{Info, Warn, Info, Error, Info} {
		l.Add(sev, "note")
		assert.GreaterOrEqual(t, l.MaxSeverity(), prev)
		prev = l.MaxSeverity()
	}
	assert.Equal(t, Error, l.MaxSeverity())
}
