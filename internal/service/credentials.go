package service

import (
	"sync"

	"github.com/launchkit/signup-server-go/internal/util"
)

// AdminCredentials owns the single in-process admin credential. The password
// is seeded from configuration and mutable via the reset flow only; it is not
// persisted, so a restart reverts it to the configured value.
type AdminCredentials struct {
	mu       sync.RWMutex
	username string
	password string
}

func NewAdminCredentials(username, password string) *AdminCredentials {
	return &AdminCredentials{
		username: username,
		password: password,
	}
}

func (c *AdminCredentials) Username() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username
}

// Verify checks both fields in constant time and reports only an overall
// match, never which field was wrong.
func (c *AdminCredentials) Verify(username, password string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	userOK := util.ConstantTimeEqual(username, c.username)
	passOK := util.ConstantTimeEqual(password, c.password)
	return userOK && passOK
}

func (c *AdminCredentials) SetPassword(password string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.password = password
}
