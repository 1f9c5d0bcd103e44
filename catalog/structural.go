package catalog

import (
	"context"
	"fmt"

	"github.com/jsando/patterns/adapter"
	"github.com/jsando/patterns/bridge"
)

func structuralDemos() []*Demo {
	return []*Demo{
		{
			Name:     "adapter",
			Category: Structural,
			Pattern:  "Adapter",
			Summary:  "Portable USB drive used as a regular hard drive",
			Run:      runAdapter,
		},
		{
			Name:     "adapter-pegs",
			Category: Structural,
			Pattern:  "Adapter",
			Summary:  "Square pegs fitted into round holes",
			Run:      runAdapterPegs,
		},
		{
			Name:     "adapter-notifications",
			Category: Structural,
			Pattern:  "Adapter",
			Summary:  "Slack API behind an email-style notifier",
			Run:      runAdapterNotifications,
		},
		{
			Name:     "adapter-text",
			Category: Structural,
			Pattern:  "Adapter",
			Summary:  "Translating an adaptee's reversed output",
			Run:      runAdapterText,
		},
		{
			Name:     "bridge",
			Category: Structural,
			Pattern:  "Bridge",
			Summary:  "Basic and advanced remotes for TVs and radios",
			Run:      runBridge,
		},
	}
}

func runAdapter(_ context.Context, env Env) error {
	portable := adapter.NewPortableDriveAdapter(func() bool {
		return env.confirm("Disconnect the portable hard drive?")
	})
	drives := []struct {
		name  string
		drive adapter.HardDrive
	}{
		{"Hard drive 1", adapter.Drive1{}},
		{"Hard drive 2", adapter.Drive2{}},
		{"Portable hard drive", portable},
	}
	for _, d := range drives {
		env.Log.Infof("%s:", d.name)
		env.Log.Info("  " + d.drive.Store())
		env.Log.Info("  " + d.drive.Erase())
	}
	return nil
}

func runAdapterPegs(_ context.Context, env Env) error {
	hole := adapter.RoundHole{Radius: 5}
	round := adapter.RoundPeg{R: 5}
	env.Log.Infof("Round peg r5 fits round hole r5: %t", hole.Fits(round))

	for _, width := range []float64{2, 20} {
		peg := adapter.SquarePegAdapter{Peg: adapter.SquarePeg{Width: width}}
		fits := hole.Fits(peg)
		env.Log.Infof("Square peg w%g (radius %.2f) fits round hole r5: %t", width, peg.Radius(), fits)
	}
	return nil
}

func runAdapterNotifications(_ context.Context, env Env) error {
	title := "Website is down!"
	message := "<strong style='color:red;'>Alert!</strong> Our website is not responding. Call admins and bring it up!"

	notifiers := []adapter.Notifier{
		adapter.EmailNotifier{AdminEmail: "developer@example.com"},
		adapter.SlackNotifier{Slack: &adapter.SlackAPI{Login: "example.com", APIKey: "XXXXXXXX"}, ChatID: "Example.com Developers"},
	}
	for _, n := range notifiers {
		for _, line := range n.Send(title, message) {
			env.Log.Info(line)
		}
	}
	return nil
}

func runAdapterText(_ context.Context, env Env) error {
	env.Log.Info("Client: I can work just fine with the Target objects:")
	env.Log.Info(adapter.Target{}.Request())

	adaptee := adapter.Adaptee{}
	env.Log.Info("Client: The Adaptee has a weird interface. See, I don't understand it:")
	env.Log.Info("Adaptee: " + adaptee.SpecificRequest())

	env.Log.Info("Client: But I can work with it via the Adapter:")
	var r adapter.Requester = adapter.TextAdapter{Adaptee: adaptee}
	env.Log.Info(r.Request())
	return nil
}

func runBridge(_ context.Context, env Env) error {
	for _, device := range []bridge.Device{bridge.NewTV(), bridge.NewRadio()} {
		env.Log.Info("Tests with basic remote.")
		basic := bridge.NewRemote(device)
		basic.Power()
		logStatus(env, device)

		env.Log.Info("Tests with advanced remote.")
		advanced := bridge.NewAdvancedRemote(device)
		advanced.Power()
		advanced.Mute()
		logStatus(env, device)

		if device.Volume() != 0 {
			return fmt.Errorf("%s: mute left volume at %d", device.Name(), device.Volume())
		}
	}
	return nil
}

func logStatus(env Env, d bridge.Device) {
	for _, line := range d.Status() {
		env.Log.Info("  | " + line)
	}
}
