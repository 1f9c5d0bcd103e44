package factorymethod

import "fmt"

// NetworkConnector is the product: a session with a social network.
type NetworkConnector interface {
	LogIn() string
	LogOut() string
	CreatePost(content string) string
}

// Poster declares the factory method Network.
type Poster interface {
	Network() NetworkConnector
}

// Post logs in, publishes content and logs out using whatever connector the
// poster creates.
func Post(p Poster, content string) []string {
	network := p.Network()
	return []string{
		network.LogIn(),
		network.CreatePost(content),
		network.LogOut(),
	}
}

type FacebookPoster struct {
	Login    string
	Password string
}

func (p FacebookPoster) Network() NetworkConnector {
	return &facebookConnector{login: p.Login, password: p.Password}
}

type LinkedInPoster struct {
	Email    string
	Password string
}

func (p LinkedInPoster) Network() NetworkConnector {
	return &linkedInConnector{email: p.Email, password: p.Password}
}

type facebookConnector struct {
	login, password string
}

func (c *facebookConnector) LogIn() string {
	return fmt.Sprintf("Send HTTP API request to log in user %s with password %s", c.login, mask(c.password))
}

func (c *facebookConnector) LogOut() string {
	return fmt.Sprintf("Send HTTP API request to log out user %s", c.login)
}

func (c *facebookConnector) CreatePost(content string) string {
	return fmt.Sprintf("Send HTTP API request to create a post in Facebook timeline: %q", content)
}

type linkedInConnector struct {
	email, password string
}

func (c *linkedInConnector) LogIn() string {
	return fmt.Sprintf("Send HTTP API request to log in user %s with password %s", c.email, mask(c.password))
}

func (c *linkedInConnector) LogOut() string {
	return fmt.Sprintf("Send HTTP API request to log out user %s", c.email)
}

func (c *linkedInConnector) CreatePost(content string) string {
	return fmt.Sprintf("Send HTTP API request to create a post in LinkedIn timeline: %q", content)
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}
