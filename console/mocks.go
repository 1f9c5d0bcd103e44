package console

import "fmt"

// MockLog is a Log that records every call, for testing demos
type MockLog struct {
	Sections []string
	Infos    []string
	Warnings []string
	Errors   []string
	Steps    []struct {
		Name string
		Err  error
	}
}

func (m *MockLog) Section(title string) {
	m.Sections = append(m.Sections, title)
}

func (m *MockLog) Info(msg string) {
	m.Infos = append(m.Infos, msg)
}

func (m *MockLog) Infof(format string, args ...any) {
	m.Info(fmt.Sprintf(format, args...))
}

func (m *MockLog) Warn(msg string) {
	m.Warnings = append(m.Warnings, msg)
}

func (m *MockLog) Error(msg string) {
	m.Errors = append(m.Errors, msg)
}

func (m *MockLog) Done(name string, err error) bool {
	m.Steps = append(m.Steps, struct {
		Name string
		Err  error
	}{name, err})
	return err != nil
}

func (m *MockLog) Failed() bool {
	if len(m.Errors) > 0 {
		return true
	}
	for _, s := range m.Steps {
		if s.Err != nil {
			return true
		}
	}
	return false
}
