package abstractfactory

// Button and Checkbox are the widget products; every GUI family provides a
// variant of each.
type Button interface {
	Paint() string
}

type Checkbox interface {
	Paint() string
}

type GUIFactory interface {
	CreateButton() Button
	CreateCheckbox() Checkbox
}

type WindowsFactory struct{}

func (WindowsFactory) CreateButton() Button     { return windowsButton{} }
func (WindowsFactory) CreateCheckbox() Checkbox { return windowsCheckbox{} }

type MacOSFactory struct{}

func (MacOSFactory) CreateButton() Button     { return macOSButton{} }
func (MacOSFactory) CreateCheckbox() Checkbox { return macOSCheckbox{} }

type windowsButton struct{}

func (windowsButton) Paint() string { return "You have created WindowsButton." }

type windowsCheckbox struct{}

func (windowsCheckbox) Paint() string { return "You have created WindowsCheckbox." }

type macOSButton struct{}

func (macOSButton) Paint() string { return "You have created MacOSButton." }

type macOSCheckbox struct{}

func (macOSCheckbox) Paint() string { return "You have created MacOSCheckbox." }

// GUIFactoryFor picks a family from an operating system name (runtime.GOOS).
func GUIFactoryFor(goos string) GUIFactory {
	if goos == "darwin" {
		return MacOSFactory{}
	}
	return WindowsFactory{}
}

// Application only knows the abstract factory and products.
type Application struct {
	button   Button
	checkbox Checkbox
}

func NewApplication(f GUIFactory) *Application {
	return &Application{
		button:   f.CreateButton(),
		checkbox: f.CreateCheckbox(),
	}
}

func (a *Application) Paint() []string {
	return []string{a.button.Paint(), a.checkbox.Paint()}
}
