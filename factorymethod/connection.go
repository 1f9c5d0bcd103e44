// Package factorymethod shows the Factory Method pattern: a creator decides
// which concrete product to build while clients only see the product interface.
package factorymethod

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

var ErrUnknownEngine = errors.New("unknown database engine")

// Engine identifies a database engine. The zero value is UnknownEngine.
type Engine int

const (
	UnknownEngine Engine = iota
	MySQL
	Oracle
	PostgreSQL
	SQLServer
)

// Engines lists every known engine in declaration order.
var Engines = []Engine{MySQL, Oracle, PostgreSQL, SQLServer}

func (e Engine) String() string {
	switch e {
	case MySQL:
		return "MySQL"
	case Oracle:
		return "Oracle"
	case PostgreSQL:
		return "PostgreSQL"
	case SQLServer:
		return "SQLServer"
	}
	return "Unknown"
}

// ParseEngine maps a case-insensitive engine name to an Engine.
func ParseEngine(name string) (Engine, error) {
	for _, e := range Engines {
		if strings.EqualFold(strings.TrimSpace(name), e.String()) {
			return e, nil
		}
	}
	return UnknownEngine, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Settings are the connection parameters shared by every engine.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// DefaultSettings mirrors the creator's built-in constants.
func DefaultSettings() Settings {
	return Settings{
		Host:     "localhost",
		Port:     "1234",
		User:     "new-user",
		Password: "admin123",
		Database: "patterns",
	}
}

func (s Settings) validate() error {
	if s.Host == "" {
		return errors.New("host is required")
	}
	port, err := strconv.Atoi(s.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", s.Port)
	}
	return nil
}

// Connection is the product every creator returns.
type Connection interface {
	Engine() Engine
	Connect() string
	Disconnect() string
	String() string
}

type connection struct {
	engine   Engine
	settings Settings
}

func (c *connection) Engine() Engine {
	return c.engine
}

func (c *connection) Connect() string {
	return fmt.Sprintf("Connection established with %s", c.engine)
}

func (c *connection) Disconnect() string {
	return fmt.Sprintf("Disconnected from %s", c.engine)
}

func (c *connection) String() string {
	return fmt.Sprintf("%s connection [host: %s, port: %s, user: %s, password: %s]",
		c.engine, c.settings.Host, c.settings.Port, c.settings.User, c.settings.Password)
}

// PostgreSQLConnection carries the parsed driver configuration of its URL.
type PostgreSQLConnection struct {
	connection
	config *pgx.ConnConfig
}

func newPostgreSQLConnection(s Settings) (*PostgreSQLConnection, error) {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   net.JoinHostPort(s.Host, s.Port),
		Path:   "/" + s.Database,
	}
	cfg, err := pgx.ParseConfig(u.String())
	if err != nil {
		return nil, fmt.Errorf("invalid PostgreSQL settings: %w", err)
	}
	return &PostgreSQLConnection{
		connection: connection{engine: PostgreSQL, settings: s},
		config:     cfg,
	}, nil
}

// URL returns the connection URL with the password redacted.
func (c *PostgreSQLConnection) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.config.User, "xxxxx"),
		Host:   net.JoinHostPort(c.config.Host, strconv.Itoa(int(c.config.Port))),
		Path:   "/" + c.config.Database,
	}
	return u.String()
}

// EmptyConnection is handed out for engine names the creator does not know.
type EmptyConnection struct{}

func (EmptyConnection) Engine() Engine {
	return UnknownEngine
}

func (EmptyConnection) Connect() string {
	return "Unknown database engine"
}

func (EmptyConnection) Disconnect() string {
	return "No engine to disconnect"
}

func (EmptyConnection) String() string {
	return "Empty connection"
}

// NewConnection builds the connection for engine. Every known engine has a
// case; UnknownEngine is rejected with ErrUnknownEngine.
func NewConnection(engine Engine, s Settings) (Connection, error) {
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", engine, err)
	}
	switch engine {
	case MySQL, Oracle, SQLServer:
		return &connection{engine: engine, settings: s}, nil
	case PostgreSQL:
		conn, err := newPostgreSQLConnection(s)
		if err != nil {
			return nil, err
		}
		return conn, nil
	case UnknownEngine:
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownEngine, int(engine))
}
