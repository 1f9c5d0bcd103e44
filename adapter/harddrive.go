// Package adapter shows the Adapter pattern: a type with an incompatible API
// is wrapped so that client code can use it through the interface it expects.
package adapter

// HardDrive is the interface client code works with.
type HardDrive interface {
	Store() string
	Erase() string
}

type Drive1 struct{}

func (Drive1) Store() string { return "Information stored on hard drive 1" }
func (Drive1) Erase() string { return "Information erased from hard drive 1" }

type Drive2 struct{}

func (Drive2) Store() string { return "Information stored on hard drive 2" }
func (Drive2) Erase() string { return "Information erased from hard drive 2" }

// PortableDrive is an existing service with its own vocabulary: it has to be
// plugged in over USB before it can be used.
type PortableDrive struct {
	connected bool
}

func (d *PortableDrive) ConnectUSB() string {
	if d.connected {
		return "Portable hard drive is already connected"
	}
	d.connected = true
	return "Portable hard drive connected over USB"
}

func (d *PortableDrive) DisconnectUSB() string {
	if !d.connected {
		return "Portable hard drive is already disconnected"
	}
	d.connected = false
	return "Portable hard drive disconnected"
}

func (d *PortableDrive) Connected() bool {
	return d.connected
}

func (d *PortableDrive) SaveInformation() string {
	return "Information stored on the portable hard drive"
}

func (d *PortableDrive) DeleteInformation() string {
	return "Information deleted from the portable hard drive"
}

// PortableDriveAdapter makes a PortableDrive usable as a HardDrive. Confirm
// is asked whether to unplug the drive after erasing; nil means never.
type PortableDriveAdapter struct {
	drive   *PortableDrive
	Confirm func() bool
}

func NewPortableDriveAdapter(confirm func() bool) *PortableDriveAdapter {
	return &PortableDriveAdapter{drive: &PortableDrive{}, Confirm: confirm}
}

func (a *PortableDriveAdapter) Store() string {
	return a.drive.ConnectUSB() + "\n" + a.drive.SaveInformation()
}

func (a *PortableDriveAdapter) Erase() string {
	msg := a.drive.DeleteInformation()
	if a.Confirm != nil && a.Confirm() {
		msg += "\n" + a.drive.DisconnectUSB()
	}
	return msg
}

// Drive returns the wrapped service.
func (a *PortableDriveAdapter) Drive() *PortableDrive {
	return a.drive
}
