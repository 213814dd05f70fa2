package ws

import (
	"sync"
)

// hub tracks the live clients of this process, indexed by connection id
// and by authenticated identity value. The presence registry in Postgres
// is the source of truth for routing decisions; the hub only maps
// identities to the sockets this instance happens to hold.
type hub struct {
	mu         sync.RWMutex
	byConnID   map[string]*client
	byIdentity map[string]map[string]*client // identity value -> connection id -> client
}

func newHub() *hub {
	return &hub{
		byConnID:   make(map[string]*client),
		byIdentity: make(map[string]map[string]*client),
	}
}

func (h *hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.byConnID[c.connectionID] = c

	peers, ok := h.byIdentity[c.actor.Identity]
	if !ok {
		peers = make(map[string]*client)
		h.byIdentity[c.actor.Identity] = peers
	}
	peers[c.connectionID] = c
}

// remove detaches a client. Reports whether the client was still
// registered, so disconnect handling runs once per connection.
func (h *hub) remove(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.byConnID[c.connectionID]; !ok {
		return false
	}
	delete(h.byConnID, c.connectionID)

	if peers, ok := h.byIdentity[c.actor.Identity]; ok {
		delete(peers, c.connectionID)
		if len(peers) == 0 {
			delete(h.byIdentity, c.actor.Identity)
		}
	}

	return true
}

// clientsFor resolves recipient identity values to the live clients of
// this process. A connection matched by several recipients is returned
// once.
func (h *hub) clientsFor(recipients []string) []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var clients []*client
	seen := make(map[string]struct{})
	for _, identity := range recipients {
		for connID, c := range h.byIdentity[identity] {
			if _, dup := seen[connID]; dup {
				continue
			}
			seen[connID] = struct{}{}
			clients = append(clients, c)
		}
	}

	return clients
}

func (h *hub) all() []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients := make([]*client, 0, len(h.byConnID))
	for _, c := range h.byConnID {
		clients = append(clients, c)
	}

	return clients
}
