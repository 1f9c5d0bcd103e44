// Package abstractfactory shows the Abstract Factory pattern: a family of
// related products is created through one factory interface, and the client
// never names a concrete product type.
package abstractfactory

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFamily = errors.New("unknown connection family")

// Family selects which concrete factory to use.
type Family int

const (
	UnknownFamily Family = iota
	Database
	REST
)

func (f Family) String() string {
	switch f {
	case Database:
		return "BBDD"
	case REST:
		return "REST"
	}
	return "Unknown"
}

// ParseFamily accepts "BBDD" (or "database") and "REST", ignoring case.
func ParseFamily(name string) (Family, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "BBDD", "DATABASE", "DB":
		return Database, nil
	case "REST":
		return REST, nil
	}
	return UnknownFamily, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// DatabaseConnection is the database product of a family.
type DatabaseConnection interface {
	Connect() string
	Disconnect() string
}

// RESTConnection is the REST product of a family.
type RESTConnection interface {
	ReadURL(url string) string
}

// ConnectionFactory creates both products. A family only builds its own kind
// of connection; asking the database family for a REST connection (or the
// reverse) returns nil.
type ConnectionFactory interface {
	Database(engine string) DatabaseConnection
	REST(area string) RESTConnection
}

// FactoryFor returns the concrete factory for a family.
func FactoryFor(f Family) (ConnectionFactory, error) {
	switch f {
	case Database:
		return DatabaseFactory{}, nil
	case REST:
		return RESTFactory{}, nil
	case UnknownFamily:
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFamily, int(f))
}

// Lookup parses name and returns the matching factory.
func Lookup(name string) (ConnectionFactory, error) {
	f, err := ParseFamily(name)
	if err != nil {
		return nil, err
	}
	return FactoryFor(f)
}

type DatabaseFactory struct{}

// engineDefaults holds the port each engine listens on by default.
var engineDefaults = map[string]struct {
	name string
	port string
}{
	"MYSQL":      {"MySQL", "3306"},
	"ORACLE":     {"Oracle", "8888"},
	"POSTGRESQL": {"PostgreSQL", "5432"},
	"SQLSERVER":  {"SQLServer", "1234"},
}

func (DatabaseFactory) Database(engine string) DatabaseConnection {
	d, ok := engineDefaults[strings.ToUpper(strings.TrimSpace(engine))]
	if !ok {
		return EmptyConnection{}
	}
	return &DBConnection{
		Engine:   d.name,
		Host:     "localhost",
		Port:     d.port,
		User:     "davidFerrer",
		Password: "admin123",
	}
}

func (DatabaseFactory) REST(string) RESTConnection {
	return nil
}

type RESTFactory struct{}

func (RESTFactory) Database(string) DatabaseConnection {
	return nil
}

func (RESTFactory) REST(area string) RESTConnection {
	switch strings.ToUpper(strings.TrimSpace(area)) {
	case "PURCHASES":
		return AreaConnection{Area: "Purchases"}
	case "SALES":
		return AreaConnection{Area: "Sales"}
	}
	return NoAreaConnection{}
}

// DBConnection is the database product for a known engine.
type DBConnection struct {
	Engine   string
	Host     string
	Port     string
	User     string
	Password string
}

func (c *DBConnection) Connect() string {
	return "Connection established with " + c.Engine
}

func (c *DBConnection) Disconnect() string {
	return "Disconnected from " + c.Engine
}

func (c *DBConnection) String() string {
	return fmt.Sprintf("%s connection [host: %s, port: %s, user: %s, password: %s]",
		c.Engine, c.Host, c.Port, c.User, c.Password)
}

type EmptyConnection struct{}

func (EmptyConnection) Connect() string {
	return "Unknown database engine"
}

func (EmptyConnection) Disconnect() string {
	return "No engine to disconnect"
}

// AreaConnection reads URLs on behalf of one business area.
type AreaConnection struct {
	Area string
}

func (c AreaConnection) ReadURL(url string) string {
	return fmt.Sprintf("%s area reading %s", c.Area, url)
}

type NoAreaConnection struct{}

func (NoAreaConnection) ReadURL(string) string {
	return "No access to this area"
}
