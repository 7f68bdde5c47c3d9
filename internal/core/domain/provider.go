package domain

// Provider is an identity generating measurable activity against one
// campaign. Index is 1-based within the campaign; 0 means the record has
// been removed.
type Provider struct {
	Address     Address
	Index       int
	Owner       Address
	Clicks      uint64
	Impressions uint64
	// Rewards is the cumulative amount already credited from the campaign.
	Rewards Amount
}

func (p *Provider) position() int      { return p.Index }
func (p *Provider) setPosition(i int) { p.Index = i }

// ProviderSet is a campaign's provider collection in registration order.
type ProviderSet struct {
	set indexed[Address, *Provider]
}

// NewProviderSet returns an empty set.
func NewProviderSet() ProviderSet {
	return ProviderSet{set: newIndexed[Address, *Provider]()}
}

// Len returns the number of providers.
func (ps *ProviderSet) Len() int { return ps.set.len() }

// Add appends a provider owned by addr.
func (ps *ProviderSet) Add(addr Address) (*Provider, error) {
	p := &Provider{Address: addr, Owner: addr}
	if !ps.set.add(addr, p) {
		return nil, ErrProviderExists
	}
	return p, nil
}

// Remove deletes the provider and renumbers every provider after it.
func (ps *ProviderSet) Remove(addr Address) (*Provider, error) {
	p, ok := ps.set.remove(addr)
	if !ok {
		return nil, ErrProviderNotFound
	}
	return p, nil
}

// Get returns the provider registered under addr.
func (ps *ProviderSet) Get(addr Address) (*Provider, error) {
	p, ok := ps.set.get(addr)
	if !ok {
		return nil, ErrProviderNotFound
	}
	return p, nil
}

// Has reports whether addr is registered.
func (ps *ProviderSet) Has(addr Address) bool {
	_, ok := ps.set.get(addr)
	return ok
}

// Addresses returns provider addresses in index order.
func (ps *ProviderSet) Addresses() []Address { return ps.set.orderedKeys() }

// All returns providers in index order. The records are live; mutate them
// only on a cloned state.
func (ps *ProviderSet) All() []*Provider { return ps.set.values() }

// Clone deep-copies the set.
func (ps *ProviderSet) Clone() ProviderSet {
	return ProviderSet{set: ps.set.clone(func(p *Provider) *Provider {
		c := *p
		return &c
	})}
}
