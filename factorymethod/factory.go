package factorymethod

// Factory is the creator of database connections.
type Factory struct {
	Settings Settings
}

func NewFactory(s Settings) *Factory {
	return &Factory{Settings: s}
}

// Connection returns the connection for a case-insensitive engine name.
// Unknown names, and settings the engine rejects, yield an EmptyConnection;
// use NewConnection to get the error instead.
func (f *Factory) Connection(name string) Connection {
	engine, err := ParseEngine(name)
	if err != nil {
		return EmptyConnection{}
	}
	conn, err := NewConnection(engine, f.Settings)
	if err != nil {
		return EmptyConnection{}
	}
	return conn
}
