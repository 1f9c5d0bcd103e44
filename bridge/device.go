// Package bridge shows the Bridge pattern: remotes (the abstraction) and
// devices (the implementation) vary independently and meet through the
// Device interface.
package bridge

import "fmt"

type Device interface {
	Name() string
	Enabled() bool
	Enable()
	Disable()
	Volume() int
	SetVolume(percent int)
	Channel() int
	SetChannel(channel int)
	Status() []string
}

// device holds the state shared by every concrete device.
type device struct {
	name    string
	on      bool
	volume  int
	channel int
}

func (d *device) Name() string  { return d.name }
func (d *device) Enabled() bool { return d.on }
func (d *device) Enable()       { d.on = true }
func (d *device) Disable()      { d.on = false }
func (d *device) Volume() int   { return d.volume }
func (d *device) Channel() int  { return d.channel }

// SetVolume clamps to 0..100.
func (d *device) SetVolume(percent int) {
	d.volume = max(0, min(100, percent))
}

// SetChannel ignores channels below 1.
func (d *device) SetChannel(channel int) {
	if channel < 1 {
		return
	}
	d.channel = channel
}

func (d *device) Status() []string {
	state := "disabled"
	if d.on {
		state = "enabled"
	}
	return []string{
		fmt.Sprintf("I'm %s.", d.name),
		fmt.Sprintf("I'm %s", state),
		fmt.Sprintf("Current volume is %d%%", d.volume),
		fmt.Sprintf("Current channel is %d", d.channel),
	}
}

type TV struct {
	device
}

func NewTV() *TV {
	return &TV{device{name: "TV", volume: 30, channel: 1}}
}

type Radio struct {
	device
}

func NewRadio() *Radio {
	return &Radio{device{name: "radio", volume: 30, channel: 1}}
}
