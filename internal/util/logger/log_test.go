package logger

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		visible bool
	}{
		{name: `Debug hidden at warn`, level: WARN, visible: false},
		{name: `Debug shown at debug`, level: `debug`, visible: true},
		{name: `Unknown level means info`, level: `loud`, visible: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.level)
			log.Debug().Msg(`trace`)
			assert.Equal(t, tt.visible, bytes.Contains(buf.Bytes(), []byte(`trace`)))
		})
	}
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	log := Console(&buf, INFO)
	log.Warn().Str(`dir`, `/tmp`).Msg(`not found`)
	assert.Contains(t, buf.String(), `not found`)
	assert.Contains(t, buf.String(), `dir=/tmp`)
}
