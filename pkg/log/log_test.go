package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestMergeFielders(t *testing.T) {
	first := Fields{"a": 1}
	merged := mergeFielders(first, Fields{"a": 2}, nil, Err(errors.New("boom")))

	require.Equal(t, logrus.Fields{
		"a":       1,
		"1.a":     2,
		"3.error": "boom",
		"3.type":  "*errors.errorString",
	}, merged)
	require.Equal(t, Fields{"a": 1}, first, "the first Fielder must not be modified")

	require.Nil(t, mergeFielders(nil, Fields{"a": 1}))
}

func TestDebugToggle(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(logrus.StandardLogger().Out)

	SetDebug(false)
	Debug("hidden")
	require.Equal(t, 0, buf.Len())

	SetDebug(true)
	defer SetDebug(false)
	Debug("shown", Fields{"k": "v"})
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "k=v")
}
