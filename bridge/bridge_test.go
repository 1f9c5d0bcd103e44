package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemotes(t *testing.T) {
	for _, d := range []Device{NewTV(), NewRadio()} {
		t.Run(d.Name(), func(t *testing.T) {
			basic := NewRemote(d)
			basic.Power()
			assert.True(t, d.Enabled())

			basic.VolumeUp()
			assert.Equal(t, 40, d.Volume())
			basic.ChannelUp()
			assert.Equal(t, 2, d.Channel())

			advanced := NewAdvancedRemote(d)
			advanced.Mute()
			assert.Equal(t, 0, d.Volume())
			advanced.Power()
			assert.False(t, d.Enabled())

			status := d.Status()
			assert.Len(t, status, 4)
			assert.Equal(t, "I'm disabled", status[1])
			assert.Equal(t, "Current volume is 0%", status[2])
		})
	}
}

func TestDeviceLimits(t *testing.T) {
	tv := NewTV()
	r := NewRemote(tv)

	for i := 0; i < 20; i++ {
		r.VolumeUp()
	}
	assert.Equal(t, 100, tv.Volume())

	for i := 0; i < 20; i++ {
		r.VolumeDown()
	}
	assert.Equal(t, 0, tv.Volume())

	r.ChannelDown()
	assert.Equal(t, 1, tv.Channel())
}
