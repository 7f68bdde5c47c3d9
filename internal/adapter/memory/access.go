package memory

import (
	"context"
	"sync"

	"mesa-ledger/internal/core/domain"
)

// Roles is a role table implementing port.AccessControl.
type Roles struct {
	mu      sync.RWMutex
	members map[domain.Role]map[domain.Address]struct{}
}

// NewRoles returns an empty table.
func NewRoles() *Roles {
	return &Roles{members: make(map[domain.Role]map[domain.Address]struct{})}
}

// Grant adds addrs to role.
func (r *Roles) Grant(role domain.Role, addrs ...domain.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.members[role]
	if !ok {
		set = make(map[domain.Address]struct{})
		r.members[role] = set
	}
	for _, a := range addrs {
		set[a] = struct{}{}
	}
}

// Revoke removes addr from role.
func (r *Roles) Revoke(role domain.Role, addr domain.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members[role], addr)
}

// HasRole reports whether addr was granted role.
func (r *Roles) HasRole(_ context.Context, role domain.Role, addr domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[role][addr]
	return ok, nil
}

// Credentials counts qualifying credentials per identity, implementing
// port.CredentialGateway.
type Credentials struct {
	mu     sync.RWMutex
	counts map[domain.Address]uint64
}

// NewCredentials returns an empty registry.
func NewCredentials() *Credentials {
	return &Credentials{counts: make(map[domain.Address]uint64)}
}

// Issue gives each addr one more credential.
func (c *Credentials) Issue(addrs ...domain.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range addrs {
		c.counts[a]++
	}
}

// Burn takes one credential from addr if it holds any.
func (c *Credentials) Burn(addr domain.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts[addr] > 0 {
		c.counts[addr]--
	}
}

// BalanceOf returns how many credentials addr holds.
func (c *Credentials) BalanceOf(_ context.Context, addr domain.Address) (uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[addr], nil
}
