package factorymethod

// Button is the product created by a Dialog.
type Button interface {
	Render() string
	OnClick() string
}

// Dialog declares the factory method CreateButton. Concrete dialogs decide
// which button they produce; Render works with any of them.
type Dialog interface {
	CreateButton() Button
}

// RenderDialog is the creator's business logic built on top of the factory method.
func RenderDialog(d Dialog) []string {
	ok := d.CreateButton()
	return []string{ok.Render(), ok.OnClick()}
}

type WindowsDialog struct{}

func (WindowsDialog) CreateButton() Button {
	return &WindowsButton{}
}

type WebDialog struct{}

func (WebDialog) CreateButton() Button {
	return &HTMLButton{}
}

type WindowsButton struct{}

func (*WindowsButton) Render() string {
	return "[ Hello World! ] (Windows button)"
}

func (*WindowsButton) OnClick() string {
	return "Windows button clicked: exit"
}

type HTMLButton struct{}

func (*HTMLButton) Render() string {
	return "<button>Test Button</button>"
}

func (*HTMLButton) OnClick() string {
	return "Click! Button says - 'Hello World!'"
}

// DialogFor picks the dialog for an operating system name as reported by runtime.GOOS.
func DialogFor(goos string) Dialog {
	if goos == "windows" {
		return WindowsDialog{}
	}
	return WebDialog{}
}
