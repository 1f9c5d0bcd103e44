package bridge

// Remote drives any Device.
type Remote struct {
	device Device
}

func NewRemote(d Device) *Remote {
	return &Remote{device: d}
}

func (r *Remote) Power() {
	if r.device.Enabled() {
		r.device.Disable()
	} else {
		r.device.Enable()
	}
}

func (r *Remote) VolumeDown()  { r.device.SetVolume(r.device.Volume() - 10) }
func (r *Remote) VolumeUp()    { r.device.SetVolume(r.device.Volume() + 10) }
func (r *Remote) ChannelDown() { r.device.SetChannel(r.device.Channel() - 1) }
func (r *Remote) ChannelUp()   { r.device.SetChannel(r.device.Channel() + 1) }

// AdvancedRemote extends the abstraction without touching the devices.
type AdvancedRemote struct {
	Remote
}

func NewAdvancedRemote(d Device) *AdvancedRemote {
	return &AdvancedRemote{Remote{device: d}}
}

func (r *AdvancedRemote) Mute() {
	r.device.SetVolume(0)
}
