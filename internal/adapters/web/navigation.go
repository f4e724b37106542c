package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"binder/internal/core"
)

const navTTL = 30 * time.Minute

// navSession pairs a navigator with its last-activity timestamp. The
// navigator is only ever touched through with, which serialises concurrent
// requests carrying the same user's cookie.
type navSession struct {
	mu       sync.Mutex
	nav      *core.Navigator
	lastSeen time.Time
}

// with runs fn with exclusive access to the session's navigator.
func (s *navSession) with(fn func(*core.Navigator)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.nav)
}

// navStore holds one navigator per authenticated user, with TTL expiry so an
// abandoned dashboard session falls back to the department list.
type navStore struct {
	mu       sync.Mutex
	catalog  *core.Catalog
	sessions map[string]*navSession
}

func newNavStore(catalog *core.Catalog) *navStore {
	return &navStore{catalog: catalog, sessions: make(map[string]*navSession)}
}

// get returns the user's session, creating a fresh Idle one if none exists
// or the previous session has expired.
func (s *navStore) get(userID string) *navSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok || time.Since(sess.lastSeen) > navTTL {
		sess = &navSession{nav: core.NewNavigator(s.catalog)}
		s.sessions[userID] = sess
	}
	sess.lastSeen = time.Now()
	return sess
}

// startPurge starts a background goroutine that evicts expired sessions
// every 5 minutes.
func (s *navStore) startPurge(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				for id, sess := range s.sessions {
					if time.Since(sess.lastSeen) > navTTL {
						delete(s.sessions, id)
					}
				}
				s.mu.Unlock()
			}
		}
	}()
}

// navigationView is the full render model for the department page: the raw
// state, the coarse mode, and everything the client needs to draw it without
// re-deriving the transition rules.
type navigationView struct {
	State           core.NavigationState `json:"state"`
	Mode            core.ViewMode        `json:"mode"`
	Departments     []core.Department    `json:"departments"`
	VisibleSubmenus []string             `json:"visibleSubmenus"`
	Submenu         []core.SubmenuItem   `json:"submenu,omitempty"`
	LeafPanel       *core.LeafPanel      `json:"leafPanel,omitempty"`
}

func (h *Handler) buildNavigationView(nav *core.Navigator) navigationView {
	view := navigationView{
		State:           nav.State(),
		Mode:            nav.Mode(),
		Departments:     h.catalog.Departments(),
		VisibleSubmenus: nav.VisibleSubmenus(),
	}
	state := nav.State()
	for _, id := range view.VisibleSubmenus {
		view.Submenu = append(view.Submenu, h.catalog.Submenu(id)...)
	}
	if state.SelectedLeafID != "" {
		if panel, ok := h.catalog.ResolveLeafPanel(state.SelectedLeafID); ok {
			view.LeafPanel = &panel
		}
	}
	return view
}

// getNavigation handles GET /api/navigation. Returns the current view for
// the authenticated user's dashboard session.
func (h *Handler) getNavigation(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())

	var view navigationView
	h.navs.get(claims.UserID).with(func(nav *core.Navigator) {
		view = h.buildNavigationView(nav)
	})
	writeJSON(w, view)
}

// postNavigation handles POST /api/navigation. Dispatches one event to the
// user's navigator and returns the resulting view. Invalid events leave the
// state untouched and return 422.
func (h *Handler) postNavigation(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())

	var ev core.Event
	if !decodeJSON(w, r, &ev) {
		return
	}

	var (
		view     navigationView
		applyErr error
	)
	h.navs.get(claims.UserID).with(func(nav *core.Navigator) {
		if applyErr = nav.Apply(ev); applyErr == nil {
			view = h.buildNavigationView(nav)
		}
	})
	if applyErr != nil {
		writeError(w, r, applyErr.Error(), "INVALID_EVENT", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, view)
}
