package ws

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/view"
	"github.com/Shaan-kapoor/restaurant-menu-platform/services"
	"github.com/Shaan-kapoor/restaurant-menu-platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes newly created orders to the owning restaurant's open
// dashboard connections.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan broadcastOrder
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex

	auth    *services.AuthService
	catalog *services.CatalogService
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

type broadcastOrder struct {
	RestaurantID uint
	Order        *entity.Order
}

func NewOrderHub(auth *services.AuthService, catalog *services.CatalogService) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastOrder),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		auth:       auth,
		catalog:    catalog,
	}
}

// Run serialises all register/unregister/broadcast traffic.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.RestaurantID] {
				if err := conn.WriteJSON(gin.H{"type": "order_created", "order": msg.Order}); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastOrder implements services.OrderFeed.
func (h *OrderHub) BroadcastOrder(o *entity.Order) {
	h.broadcast <- broadcastOrder{RestaurantID: o.RestaurantID, Order: o}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type dashboardSnapshot struct {
	Restaurant   *entity.Restaurant `json:"restaurant"`
	RecentOrders []entity.Order     `json:"recentOrders"`
}

// WS route: /ws/dashboard (owner only; token in query string)
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	// The connection outlives the HTTP request; give the fetches their own
	// lifetime, cancelled when the socket goes away.
	connCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// one session per connection; a sign-out notification tears it down
	session := services.NewSessionStore(h.auth)
	defer session.Close()
	unsub := session.OnIdentityChange(func(u *entity.User) {
		if u == nil {
			conn.Close()
		}
	})
	defer unsub()
	session.Attach(connCtx, userID)

	vc := view.NewController[dashboardSnapshot]()
	vc.Load(connCtx, func(ctx context.Context) (dashboardSnapshot, error) {
		rest, err := h.auth.RestaurantFor(ctx, userID)
		if err != nil {
			return dashboardSnapshot{}, err
		}
		orders, err := h.catalog.ListOrdersForRestaurant(ctx, rest.ID)
		if err != nil {
			return dashboardSnapshot{}, err
		}
		return dashboardSnapshot{Restaurant: rest, RecentOrders: orders}, nil
	})
	defer vc.Unmount()

	state := vc.State()
	if state.Loading || state.Err != nil {
		conn.WriteJSON(gin.H{"type": "error", "error": "failed to load dashboard"})
		conn.Close()
		return
	}
	if err := conn.WriteJSON(gin.H{"type": "snapshot", "data": state.Data}); err != nil {
		conn.Close()
		return
	}

	restID := state.Data.Restaurant.ID
	h.register <- subscription{Conn: conn, RestaurantID: restID}
	defer func() { h.unregister <- subscription{Conn: conn, RestaurantID: restID} }()

	// drain until the peer goes away; the feed is write-only
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
