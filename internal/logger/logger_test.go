package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("info"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	std := logrus.StandardLogger()
	prevOut, prevFormatter := std.Out, std.Formatter
	std.SetOutput(&buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
	})

	t.Run("user id from context", func(t *testing.T) {
		buf.Reset()
		ctx := ContextWithUserID(context.Background(), "3b1f0c9e")
		WithContext(ctx).WithField("deal_id", "d1").Info("hello")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "3b1f0c9e", entry["user"])
		assert.Equal(t, "d1", entry["deal_id"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("unknown user", func(t *testing.T) {
		buf.Reset()
		WithContext(context.Background()).Info("anon")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "unknown", entry["user"])
	})
}
