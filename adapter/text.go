package adapter

// Requester is what the client calls.
type Requester interface {
	Request() string
}

type Target struct{}

func (Target) Request() string {
	return "Target: The default target's behavior."
}

// Adaptee has useful behavior behind an incompatible method.
type Adaptee struct{}

func (Adaptee) SpecificRequest() string {
	return ".eetpadA eht fo roivaheb laicepS"
}

type TextAdapter struct {
	Adaptee Adaptee
}

func (a TextAdapter) Request() string {
	return "Adapter: (TRANSLATED) " + reverse(a.Adaptee.SpecificRequest())
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
