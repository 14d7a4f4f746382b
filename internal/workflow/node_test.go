package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeSource_Depth(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{"top level", "", 0},
		{"one inclusion", "7", 1},
		{"two levels", "7:12", 2},
		{"three levels", "7:12:45", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NodeSource{GraphName: "sub", GraphVersion: 1, InstancePath: tt.path}
			assert.Equal(t, tt.want, s.Depth())
		})
	}
}

func TestGraphID_String(t *testing.T) {
	id := GraphID{ID: 42, Name: "approve-request", Version: 3}
	assert.Equal(t, "approve-request/3", id.String())
}

func TestNoExtra_Type(t *testing.T) {
	var extra Extra = NoExtra{}
	assert.Equal(t, "none", extra.ExtraType())
}
